package shaders

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Source is the GLSL text of one program.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
	// Override is true when at least one stage came from the override dir.
	Override bool
}

// Library resolves program sources. Files in Dir named <program>.vert or
// <program>.frag replace the embedded stage of the same name; everything
// else falls back to FS.
type Library struct {
	Dir string
}

// Load returns the sources for a program.
func (l Library) Load(name string) (Source, error) {
	src := Source{Name: name}

	var fromDir bool
	var err error
	if src.Vertex, fromDir, err = l.stage(name + ".vert"); err != nil {
		return Source{}, err
	}
	src.Override = fromDir
	if src.Fragment, fromDir, err = l.stage(name + ".frag"); err != nil {
		return Source{}, err
	}
	src.Override = src.Override || fromDir

	return src, nil
}

func (l Library) stage(file string) (string, bool, error) {
	if l.Dir != "" {
		data, err := os.ReadFile(filepath.Join(l.Dir, file))
		if err == nil {
			return string(data), true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("reading shader override %s: %w", file, err)
		}
	}

	data, err := FS.ReadFile(file)
	if err != nil {
		return "", false, fmt.Errorf("shader %s: %w", file, err)
	}
	return string(data), false, nil
}

// ProgramFor maps a shader file name to its program name, reporting false
// for files that are not a stage of any program.
func ProgramFor(file string) (string, bool) {
	base := filepath.Base(file)
	ext := filepath.Ext(base)
	if ext != ".vert" && ext != ".frag" {
		return "", false
	}
	return base[:len(base)-len(ext)], true
}
