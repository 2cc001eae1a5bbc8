package server

import (
	"context"
	"errors"
	"net"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	bm "github.com/charmbracelet/wish/bubbletea"
	lm "github.com/charmbracelet/wish/logging"
	"github.com/xh3b4sd/tracer"

	"github.com/landrecords/landdeck/internal/model"
)

type Config struct {
	Host         string
	Port         int
	KeyPath      string
	Presentation model.Model
}

// Server serves a presentation over SSH. Every session gets its own copy of
// the presentation model.
type Server struct {
	host         string
	port         int
	presentation model.Model
	srv          *ssh.Server
}

func New(c Config) (*Server, error) {
	if c.Host == "" {
		return nil, tracer.Maskf(invalidConfigError, "%T.Host must not be empty", c)
	}
	if c.Port <= 0 {
		return nil, tracer.Maskf(invalidConfigError, "%T.Port must be positive", c)
	}
	if c.KeyPath == "" {
		return nil, tracer.Maskf(invalidConfigError, "%T.KeyPath must not be empty", c)
	}
	if len(c.Presentation.Slides) == 0 {
		return nil, tracer.Maskf(invalidConfigError, "%T.Presentation must not be empty", c)
	}

	s := &Server{
		host:         c.Host,
		port:         c.Port,
		presentation: c.Presentation,
	}

	var err error
	s.srv, err = wish.NewServer(
		wish.WithAddress(s.Addr()),
		wish.WithHostKeyPath(c.KeyPath),
		wish.WithMiddleware(
			bm.Middleware(s.handler),
			lm.Middleware(),
		),
	)
	if err != nil {
		return nil, tracer.Mask(err)
	}

	return s, nil
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.host, strconv.Itoa(s.port))
}

func (s *Server) handler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sess.Pty()
	if !active {
		wish.Fatalln(sess, "no active terminal, skipping")
		return nil, nil
	}

	m := s.presentation
	m.SetSize(pty.Window.Width, pty.Window.Height)

	return m, []tea.ProgramOption{tea.WithAltScreen()}
}

// Start listens until the server is shut down. A clean shutdown returns nil.
func (s *Server) Start() error {
	log.Info("starting ssh server", "addr", s.Addr())

	err := s.srv.ListenAndServe()
	if err == nil || errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}

	return tracer.Mask(err)
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	if err != nil {
		return tracer.Mask(err)
	}

	return nil
}
