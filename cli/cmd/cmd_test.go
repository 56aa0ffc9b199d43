package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/reactome/releasefetch/gunzip"
	"github.com/reactome/releasefetch/internal/config"
)

func TestParseGunzipJobs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []gunzip.Job
		wantErr string
	}{
		{
			name: "derives the target",
			args: []string{"/data/uniprot.xml.gz"},
			want: []gunzip.Job{{Source: "/data/uniprot.xml.gz", Target: "/data/uniprot.xml"}},
		},
		{
			name: "explicit target",
			args: []string{"/data/cosmic.tsv.gz:/data/cosmic/mutants.tsv", "/data/hmdb.xml.gz:"},
			want: []gunzip.Job{
				{Source: "/data/cosmic.tsv.gz", Target: "/data/cosmic/mutants.tsv"},
				{Source: "/data/hmdb.xml.gz", Target: "/data/hmdb.xml"},
			},
		},
		{
			name:    "no suffix",
			args:    []string{"/data/orphanet.xml"},
			wantErr: "cannot derive a target for /data/orphanet.xml: no .gz suffix",
		},
		{
			name:    "empty source",
			args:    []string{":/data/out"},
			wantErr: `invalid argument ":/data/out": empty source`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := parseGunzipJobs(tt.args)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, jobs)
		})
	}
}

func TestNewZapLogger(t *testing.T) {
	logger, err := newZapLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = newZapLogger("error", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = newZapLogger("chatty", false)
	assert.ErrorContains(t, err, `invalid log level "chatty"`)
}

func TestGetOutputFormat(t *testing.T) {
	t.Cleanup(func() { jsonOut = false })

	jsonOut = false
	assert.Equal(t, "human", getOutputFormat())
	jsonOut = true
	assert.Equal(t, "json", getOutputFormat())
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "releasefetch.properties")
	require.NoError(t, os.WriteFile(path, []byte(
		"curator.database.name=gk_central\ncurator.database.password=s3cret\n"+
			"sources.uniprot.url=https://rest.uniprot.org/uniprotkb/stream\n"+
			"sources.uniprot.destination=/data/uniprot.tsv\n"+
			"sources.uniprot.max_age=24h\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--config", path, "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		cfgFile, logLevel = "", ""
	})

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "name: gk_central")
	assert.Contains(t, out.String(), "max_age: 24h0m0s")
	assert.Contains(t, out.String(), "********")
	assert.NotContains(t, out.String(), "s3cret")
}

func TestSelectDatabase(t *testing.T) {
	c := &config.Config{}
	c.Curator.Database.Name = "gk_central"
	c.Release.Database.Host = "release.reactome.org"

	db, err := selectDatabase(c, config.PrefixCurator)
	require.NoError(t, err)
	assert.Equal(t, "gk_central", db.Name)

	_, err = selectDatabase(c, config.PrefixRelease)
	assert.EqualError(t, err, "no database name: set release.database.name")

	c.Release.Database.Name = "release_current"
	db, err = selectDatabase(c, config.PrefixRelease)
	require.NoError(t, err)
	assert.Equal(t, "release.reactome.org", db.Host)

	_, err = selectDatabase(c, "slice")
	assert.ErrorContains(t, err, `unknown database "slice"`)
}
