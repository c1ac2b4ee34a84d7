package pkg

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"
	"log"
	"os/exec"
	"time"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

// Server hosts the board over ssh. Every interactive connection runs its own
// copy of the board binary inside a pseudo-terminal.
type Server struct {
	*ssh.Server
	Binary string
	Args   []string
}

// NewServer prepares an ssh server on addr. When hostKeyFile is empty an
// ed25519 host key is generated for the lifetime of the process.
func NewServer(addr, binary, hostKeyFile string, args ...string) (*Server, error) {
	if binary == "" {
		return nil, fmt.Errorf("server: board binary must be specified")
	}
	s := &Server{Binary: binary, Args: args}
	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
	}

	if hostKeyFile != "" {
		if err := s.SetOption(ssh.HostKeyFile(hostKeyFile)); err != nil {
			return nil, fmt.Errorf("server: load host key: %w", err)
		}
		return s, nil
	}

	signer, err := generateHostKey()
	if err != nil {
		return nil, fmt.Errorf("server: generate host key: %w", err)
	}
	s.AddHostKey(signer)
	return s, nil
}

func generateHostKey() (gossh.Signer, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return gossh.NewSignerFromKey(key)
}

// boardCommand builds the board process for one connection. Clients are not
// authenticated, so none of their environment reaches the process.
func (s *Server) boardCommand(ctx context.Context, name, term string) *exec.Cmd {
	args := append([]string{"-name", name}, s.Args...)
	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = boardEnv(term)
	return cmd
}

func boardEnv(term string) []string {
	if term == "" {
		term = "xterm"
	}
	return []string{fmt.Sprintf("TERM=%s", term)}
}

func (s *Server) handle(sess ssh.Session) {
	name := petname.Generate(2, "-")
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}
	log.Printf("Connection %s from %s (%s)", name, sess.RemoteAddr(), sess.User())

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := s.boardCommand(cmdCtx, name, ptyReq.Term)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(ptyReq.Window.Height),
		Cols: uint16(ptyReq.Window.Width),
	})
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)})
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cmd.Wait()
	log.Printf("Connection %s closed", name)
}
