package releasefetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/textproto"
	"regexp"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/reactome/releasefetch/log"
)

const defaultFTPPort = "21"

var ftpFailureReply = regexp.MustCompile(`^5\d\d`)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o mocks/ftp_conn.go . FTPConn

// FTPConn is an FTP control connection.
type FTPConn interface {
	Login(user, password string) error
	// Binary switches the connection to binary transfers.
	Binary() error
	// Retrieve starts a download of path. A nil stream with a nil error means
	// the server refused the transfer; LastReply tells why.
	Retrieve(path string) (io.ReadCloser, error)
	// LastReply returns the code and text of the last reply read from the server.
	LastReply() (int, string)
	Quit() error
}

// FTPDialOptions configures a new FTP control connection.
type FTPDialOptions struct {
	Timeout time.Duration
	// Passive uses PASV rather than EPSV for data connections.
	Passive bool
}

// FTPDialer opens an FTP control connection to addr (host:port).
type FTPDialer func(ctx context.Context, addr string, opts FTPDialOptions) (FTPConn, error)

// DialFTP is the default FTPDialer.
func DialFTP(ctx context.Context, addr string, opts FTPDialOptions) (FTPConn, error) {
	conn, err := ftp.Dial(addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(opts.Timeout),
		ftp.DialWithDisabledEPSV(opts.Passive),
	)
	if err != nil {
		return nil, err
	}

	return &serverConn{conn: conn}, nil
}

// serverConn adapts *ftp.ServerConn to FTPConn and remembers the last reply.
type serverConn struct {
	conn  *ftp.ServerConn
	code  int
	reply string
}

func (c *serverConn) Login(user, password string) error {
	if err := c.conn.Login(user, password); err != nil {
		c.record(err)
		return err
	}
	c.set(ftp.StatusLoggedIn)
	return nil
}

func (c *serverConn) Binary() error {
	if err := c.conn.Type(ftp.TransferTypeBinary); err != nil {
		c.record(err)
		return err
	}
	c.set(ftp.StatusCommandOK)
	return nil
}

func (c *serverConn) Retrieve(path string) (io.ReadCloser, error) {
	res, err := c.conn.Retr(path)
	if err != nil {
		if c.record(err) {
			return nil, nil
		}
		return nil, err
	}
	c.set(ftp.StatusAboutToSend)

	return &retrieval{Response: res, conn: c}, nil
}

func (c *serverConn) LastReply() (int, string) {
	return c.code, c.reply
}

func (c *serverConn) Quit() error {
	return c.conn.Quit()
}

func (c *serverConn) set(code int) {
	c.code = code
	c.reply = fmt.Sprintf("%d %s", code, ftp.StatusText(code))
}

// record stores the reply carried by err and reports whether err was a server reply.
func (c *serverConn) record(err error) bool {
	var protoErr *textproto.Error
	if !errors.As(err, &protoErr) {
		return false
	}
	c.code = protoErr.Code
	c.reply = fmt.Sprintf("%d %s", protoErr.Code, protoErr.Msg)
	return true
}

// retrieval records the final transfer reply when the data stream is closed.
type retrieval struct {
	*ftp.Response
	conn *serverConn
}

func (r *retrieval) Close() error {
	if err := r.Response.Close(); err != nil {
		if r.conn.record(err) {
			return nil
		}
		return err
	}
	r.conn.set(ftp.StatusClosingDataConnection)
	return nil
}

func (r *FileRetriever) downloadFTP(ctx context.Context, logger log.Logger) error {
	addr := r.source.Host
	if r.source.Port() == "" {
		addr = net.JoinHostPort(r.source.Hostname(), defaultFTPPort)
	}

	conn, err := r.ftpDialer(ctx, addr, FTPDialOptions{Timeout: r.timeout, Passive: r.passiveFTP})
	if err != nil {
		return NewRetrievalFailureError("ftp connect", r.destination, err)
	}

	err = r.transferFTP(conn, logger)
	if quitErr := conn.Quit(); quitErr != nil && err == nil {
		return NewRetrievalFailureError("ftp quit", r.destination, quitErr)
	}

	return err
}

func (r *FileRetriever) transferFTP(conn FTPConn, logger log.Logger) error {
	user, password := r.credentials.ftpLogin()
	if err := conn.Login(user, password); err != nil {
		return r.ftpReplyError("ftp login", conn, err)
	}
	code, _ := conn.LastReply()
	logger.Debug("Connect/login reply code", "code", code)

	if err := conn.Binary(); err != nil {
		return r.ftpReplyError("ftp set binary type", conn, err)
	}

	stream, err := conn.Retrieve(r.source.Path)
	if err != nil {
		logger.Error("Error while retrieving the file", "error", err)
		return NewRetrievalFailureError("ftp retrieve", r.destination, err)
	}

	var data []byte
	if stream == nil {
		logger.Error("No data returned from server", "url", r.source.Redacted())
	} else {
		var readErr error
		data, readErr = io.ReadAll(stream)
		closeErr := stream.Close()
		if err := errors.Join(readErr, closeErr); err != nil {
			logger.Error("Error while retrieving the file", "error", err)
			return NewRetrievalFailureError("ftp retrieve", r.destination, err)
		}
	}

	// The reply decides whether the bytes are kept.
	code, reply := conn.LastReply()
	logger.Debug("Retrieve file reply code", "code", code)
	if isFTPFailure(code, reply) {
		transferErr := NewFTPTransferError(code, reply)
		logger.Error(transferErr.Error())
		return transferErr
	}

	if stream == nil {
		return nil
	}
	return writeFile(r.destination, bytes.NewReader(data))
}

// ftpReplyError turns a failed command into an FTPTransferError when the server
// answered with a 5xx reply, and into a RetrievalFailureError otherwise.
func (r *FileRetriever) ftpReplyError(op string, conn FTPConn, err error) error {
	if code, reply := conn.LastReply(); isFTPFailure(code, reply) {
		return NewFTPTransferError(code, reply)
	}
	return NewRetrievalFailureError(op, r.destination, err)
}

func isFTPFailure(code int, reply string) bool {
	return ftpFailureReply.MatchString(reply) || (code >= 500 && code < 600)
}
