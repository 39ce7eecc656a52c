package mybatis_gen

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"text/template"

	"mapper-gen/mybatis_gen/templates"
)

// Sink receives every artifact of a run.
type Sink interface {
	Write(templateID, path string, ctx *TableContext) error
}

// FileSink renders templates to disk.
type FileSink struct {
	Override bool // replace files that already exist
	Logger   *slog.Logger

	Written []string
	Skipped []string

	parsed map[string]*template.Template
}

func (s *FileSink) Write(templateID, path string, ctx *TableContext) error {
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}
	if _, err := os.Stat(path); err == nil && !s.Override {
		log.Warn("file exists, skipped", "path", path)
		s.Skipped = append(s.Skipped, path)
		return nil
	}
	tmpl, err := s.template(templateID)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return fmt.Errorf("render %s: %w", templateID, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	log.Info("file written", "path", path, "table", ctx.Table.Name)
	s.Written = append(s.Written, path)
	return nil
}

func (s *FileSink) template(id string) (*template.Template, error) {
	if tmpl, ok := s.parsed[id]; ok {
		return tmpl, nil
	}
	tmpl, err := templates.Parse(id)
	if err != nil {
		return nil, err
	}
	if s.parsed == nil {
		s.parsed = map[string]*template.Template{}
	}
	s.parsed[id] = tmpl
	return tmpl, nil
}

// Output is one artifact a run would produce.
type Output struct {
	Template string
	Path     string
	Table    string
}

// DryRunSink records artifacts without rendering them. Each one is also
// printed to Out when set.
type DryRunSink struct {
	Out     io.Writer
	Outputs []Output
}

func (s *DryRunSink) Write(templateID, path string, ctx *TableContext) error {
	o := Output{Template: templateID, Path: path, Table: ctx.Table.Name}
	s.Outputs = append(s.Outputs, o)
	if s.Out != nil {
		fmt.Fprintf(s.Out, "%-18s %-24s %s\n", o.Template, o.Table, o.Path)
	}
	return nil
}

// OpenDir shows dir in the desktop file browser where one is known.
func OpenDir(dir string, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", dir)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", dir)
	default:
		log.Info("generated files", "dir", dir)
		return nil
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", dir, err)
	}
	return nil
}
