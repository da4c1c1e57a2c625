package minecraft

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/Adirelle/efadmintag/pkg/events"
	"github.com/apex/log"
)

type (
	// Server runs the Minecraft server process and gives access to its console.
	Server struct {
		Config
		events.Dispatcher
		Output io.Writer

		mu    sync.Mutex
		stdin io.WriteCloser
	}

	ServerOutput string

	ServerStarted struct{ Pid int }
	ServerStopped struct{ Err error }
)

var (
	ErrServerNotRunning = errors.New("server is not running")

	_ events.Event = ServerOutput("")
	_ events.Event = ServerStarted{}
	_ events.Event = ServerStopped{}
)

func NewServer(conf Config, dispatcher events.Dispatcher) *Server {
	return &Server{Config: conf, Dispatcher: dispatcher, Output: os.Stdout}
}

func (s *Server) GoString() string {
	return fmt.Sprintf("Minecraft Server (%s)", s.WorkingDir)
}

func (s *Server) Serve(ctx context.Context) (err error) {
	cmdLine := s.CmdLine()
	cmd := exec.Command(cmdLine[0], cmdLine[1:]...)
	cmd.Dir = s.WorkingDir
	cmd.Env = s.Env()

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return
	}

	if err = cmd.Start(); err != nil {
		return fmt.Errorf("could not start `%s`: %w", strings.Join(cmdLine, " "), err)
	}
	log.WithField("pid", cmd.Process.Pid).Info("server.started")
	s.DispatchEvent(ServerStarted{cmd.Process.Pid})

	s.setStdin(stdin)
	defer s.setStdin(nil)

	var readers sync.WaitGroup
	readers.Add(2)
	go func() {
		defer readers.Done()
		readLines(stdout, s.handleStdout)
	}()
	go func() {
		defer readers.Done()
		readLines(stderr, logStderr)
	}()

	done := make(chan struct{})
	go s.stopOnContextDone(ctx, cmd.Process, done)

	readers.Wait()
	err = cmd.Wait()
	close(done)

	log.WithError(err).Info("server.stopped")
	s.DispatchEvent(ServerStopped{err})

	if ctx.Err() != nil {
		return nil
	}
	if err == nil {
		err = errors.New("server exited")
	}
	return
}

// Execute sends a command to the server console.
func (s *Server) Execute(command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stdin == nil {
		return ErrServerNotRunning
	}
	log.WithField("command", command).Debug("server.execute")
	_, err := io.WriteString(s.stdin, command+"\n")
	return err
}

func (s *Server) setStdin(stdin io.WriteCloser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stdin = stdin
}

func (s *Server) stopOnContextDone(ctx context.Context, proc *os.Process, done <-chan struct{}) {
	select {
	case <-done:
		return
	case <-ctx.Done():
	}

	log.Info("server.stopping")
	if err := s.Execute("stop"); err != nil {
		log.WithError(err).Warn("server.stop")
	}

	select {
	case <-done:
	case <-time.After(s.StopDelay()):
		log.WithField("timeout", s.StopDelay()).Warn("server.kill")
		if err := proc.Kill(); err != nil {
			log.WithError(err).Error("server.kill")
		}
	}
}

func (s *Server) handleStdout(line string) {
	if s.Output != nil {
		_, _ = fmt.Fprintln(s.Output, line)
	}
	s.DispatchEvent(ServerOutput(line))
}

func readLines(rd io.Reader, f func(string)) {
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		f(scanner.Text())
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		log.WithError(err).Debug("server.readLines")
	}
}

func logStderr(line string) {
	log.WithField("output", line).Warn("server.stderr")
}

func (o ServerOutput) Fields() log.Fields {
	return log.Fields{"line": string(o)}
}

func (e ServerStarted) Fields() log.Fields {
	return log.Fields{"pid": e.Pid}
}

func (e ServerStopped) Fields() log.Fields {
	return log.Fields{"error": e.Err}
}
