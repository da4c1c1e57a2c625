package logging

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"path/filepath"
	"time"

	"github.com/apex/log"
	"github.com/thejerf/suture/v4"
	"gopkg.in/natefinch/lumberjack.v2"
)

type (
	FileConfig struct {
		Disabled bool      `json:"disabled,omitempty"`
		Level    log.Level `json:"level"`
		*lumberjack.Logger

		entries chan *log.Entry
	}
)

const (
	DefaultFilename = "efadmintag.log"
)

var (
	_ factory        = (*FileConfig)(nil)
	_ suture.Service = (*FileConfig)(nil)
)

func NewFileConfig(baseDir string) *FileConfig {
	return &FileConfig{
		Level: log.InfoLevel,
		Logger: &lumberjack.Logger{
			Filename:   filepath.Join(baseDir, DefaultFilename),
			MaxSize:    10, // megabytes
			MaxBackups: 10,
			LocalTime:  true,
			Compress:   true,
		},
		entries: make(chan *log.Entry, 100),
	}
}

func (f *FileConfig) CreateLogging() (log.Handler, log.Level, suture.Service) {
	if f.Disabled {
		return nil, log.FatalLevel, nil
	}
	if f.entries == nil {
		f.entries = make(chan *log.Entry, 100)
	}
	return f, f.Level, f
}

// HandleLog queues the entry for the writer service. Entries are dropped when the queue is full.
func (f *FileConfig) HandleLog(entry *log.Entry) error {
	if entry.Level < f.Level {
		return nil
	}
	select {
	case f.entries <- entry:
	default:
	}
	return nil
}

func (f *FileConfig) SetBaseDir(baseDir string) {
	if !filepath.IsAbs(f.Filename) {
		f.Filename = filepath.Join(baseDir, f.Filename)
	}
}

func (f *FileConfig) Serve(ctx context.Context) (err error) {
	defer func() {
		cerr := f.Logger.Close()
		if err == nil {
			err = cerr
		}
		if err != nil {
			stdlog.Printf("error logging to %s: %s", f.Filename, err)
		}
	}()
	log.WithField("path", f.Filename).Debug("logging.file.started")

	for {
		select {
		case entry := <-f.entries:
			err = f.WriteEntry(f.Logger, entry)
			if err != nil {
				return
			}
		case <-ctx.Done():
			return f.flush()
		}
	}
}

// flush writes the entries still queued when the service stops.
func (f *FileConfig) flush() error {
	for {
		select {
		case entry := <-f.entries:
			if err := f.WriteEntry(f.Logger, entry); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (f *FileConfig) WriteEntry(writer io.Writer, entry *log.Entry) (err error) {
	_, err = fmt.Fprintf(writer, "%s [%s] %s", entry.Timestamp.Format(time.RFC3339), entry.Level, entry.Message)
	if err != nil {
		return
	}

	fields := entry.Fields
	for _, name := range fields.Names() {
		_, err = fmt.Fprintf(writer, " %s=%v", name, fields.Get(name))
		if err != nil {
			return
		}
	}

	_, err = writer.Write([]byte("\n"))

	return
}
