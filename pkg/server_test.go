package pkg

import (
	"bytes"
	"context"
	"errors"
	"net"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	gossh "golang.org/x/crypto/ssh"
)

func TestNewServer(t *testing.T) {
	if _, err := NewServer(SshPort, "", ""); err == nil {
		t.Error("wanted an error without a board binary")
	}

	s, err := NewServer("127.0.0.1:0", "chessterm", "", "-flip")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.HostSigners) != 1 {
		t.Errorf("wanted one generated host key, got %d", len(s.HostSigners))
	}
	if s.HostSigners[0].PublicKey().Type() != "ssh-ed25519" {
		t.Errorf("wanted an ed25519 key, got %s", s.HostSigners[0].PublicKey().Type())
	}
	if len(s.Args) != 1 || s.Args[0] != "-flip" {
		t.Errorf("unexpected args %v", s.Args)
	}

	if _, err := NewServer(SshPort, "chessterm", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("wanted an error for a missing host key file")
	}
}

func TestBoardCommand(t *testing.T) {
	s, err := NewServer("127.0.0.1:0", "/usr/local/bin/chessterm", "", "-flip", "-theme", "wood")
	if err != nil {
		t.Fatal(err)
	}
	cmd := s.boardCommand(context.Background(), "brave-otter", "screen-256color")

	wantArgs := []string{"/usr/local/bin/chessterm", "-name", "brave-otter", "-flip", "-theme", "wood"}
	if diff := cmp.Diff(wantArgs, cmd.Args); diff != "" {
		t.Errorf("args (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"TERM=screen-256color"}, cmd.Env); diff != "" {
		t.Errorf("env (-want +got):\n%s", diff)
	}

	// A second connection must not see the first one's arguments.
	other := s.boardCommand(context.Background(), "calm-heron", "")
	if other.Args[2] != "calm-heron" || cmd.Args[2] != "brave-otter" {
		t.Errorf("connection names leaked between commands: %v %v", cmd.Args, other.Args)
	}
	if diff := cmp.Diff([]string{"TERM=xterm"}, other.Env); diff != "" {
		t.Errorf("env without a terminal type (-want +got):\n%s", diff)
	}
}

func TestBoardEnvIgnoresClientEnvironment(t *testing.T) {
	for _, term := range []string{"xterm", "vt100"} {
		env := boardEnv(term)
		if len(env) != 1 || env[0] != "TERM="+term {
			t.Errorf("wanted only TERM=%s, got %v", term, env)
		}
	}
}

func TestServerRefusesNonInteractive(t *testing.T) {
	s, err := NewServer("127.0.0.1:0", "chessterm", "")
	if err != nil {
		t.Fatal(err)
	}
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go s.Serve(l)
	defer s.Close()

	client, err := gossh.Dial("tcp", l.Addr().String(), &gossh.ClientConfig{
		User:            "guest",
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
	})
	if err != nil {
		t.Fatalf("failed to connect: %s", err)
	}
	defer client.Close()

	sess, err := client.NewSession()
	if err != nil {
		t.Fatalf("failed to open session: %s", err)
	}
	defer sess.Close()

	var out bytes.Buffer
	sess.Stdout = &out
	// Client environment is accepted or ignored, never fatal.
	sess.Setenv("LD_PRELOAD", "/tmp/evil.so")
	if err := sess.Shell(); err != nil {
		t.Fatalf("failed to start shell: %s", err)
	}
	err = sess.Wait()

	var exitErr *gossh.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitStatus() != 1 {
		t.Errorf("wanted exit status 1, got %v", err)
	}
	if !strings.Contains(out.String(), "non-interactive terminals are not supported") {
		t.Errorf("unexpected output %q", out.String())
	}
}
