//go:build tools

package releasefetch

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
