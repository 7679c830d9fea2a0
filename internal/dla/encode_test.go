package dla

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	p := testParams(31, 31)
	p.TargetParticles = 200
	p.Seed = 77
	c, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}
	c.TickN(80)

	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Stats() != c.Stats() {
		t.Errorf("loaded stats %+v differ from saved %+v", loaded.Stats(), c.Stats())
	}
	if !loaded.engine.Grid().Equal(c.engine.Grid()) {
		t.Error("loaded grid differs from saved grid")
	}

	// Restoring the same bytes twice yields the same future.
	loaded2, err := Load(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	loaded.TickN(50)
	loaded2.TickN(50)
	if !loaded.engine.Grid().Equal(loaded2.engine.Grid()) {
		t.Error("two restores of the same file diverged")
	}
}

func TestSaveFileRefusesOverwrite(t *testing.T) {
	p := testParams(9, 9)
	c, err := NewController(p)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "run.dla")
	if err := c.SaveFile(path); err != nil {
		t.Fatalf("first SaveFile: %v", err)
	}
	if err := c.SaveFile(path); err == nil {
		t.Error("second SaveFile overwrote an existing file")
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !loaded.engine.Grid().Equal(c.engine.Grid()) {
		t.Error("file round trip changed the grid")
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := Load(bytes.NewReader([]byte("not a gzip stream"))); err == nil {
		t.Error("Load accepted a non-gzip stream")
	}
}

func TestLoadRejectsMismatchedField(t *testing.T) {
	sr := savedRun{
		Params: testParams(10, 10),
		Cells:  make([]Cell, 7), // wrong length for 10x10
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(zw).Encode(sr); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(&buf); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("mismatched cell field: want ErrInvalidParams, got %v", err)
	}
}

func TestLoadRejectsEmptyField(t *testing.T) {
	sr := savedRun{
		Params: testParams(4, 4),
		Cells:  make([]Cell, 16), // right size, nothing filled
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if err := gob.NewEncoder(zw).Encode(sr); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(&buf); !errors.Is(err, ErrInvalidInitialState) {
		t.Errorf("empty cell field: want ErrInvalidInitialState, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.dla"))
	if err == nil {
		t.Fatal("LoadFile on a missing path succeeded")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want os.ErrNotExist in chain, got %v", err)
	}
}
