package pattern

import (
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/seqwalk/quant"
)

// File is an on-disk pair of pattern sequences.
type File struct {
	Name string   `yaml:"name" json:"name"`
	Dest []string `yaml:"dest" json:"dest"`
	Src  []string `yaml:"src" json:"src"`
}

// LoadFile reads a pattern file. Files ending in .cue are evaluated with
// CUE; anything else is parsed as YAML.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern file: %w", err)
	}
	if filepath.Ext(path) == ".cue" {
		return loadCUE(path, data)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse pattern file %s: %w", path, err)
	}
	return &f, nil
}

func loadCUE(path string, data []byte) (*File, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile CUE pattern file %s: %w", path, err)
	}
	var f File
	if err := v.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode CUE pattern file %s: %w", path, err)
	}
	return &f, nil
}

// Sequences parses both sides of the file into quantified items.
func (f *File) Sequences() (dest, src []quant.Item[string], err error) {
	dest, err = ParseSeq(f.Dest)
	if err != nil {
		return nil, nil, fmt.Errorf("dest: %w", err)
	}
	src, err = ParseSeq(f.Src)
	if err != nil {
		return nil, nil, fmt.Errorf("src: %w", err)
	}
	return dest, src, nil
}
