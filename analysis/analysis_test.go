package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/slate/document"
	"github.com/teranos/slate/errors"
	"go.uber.org/zap"
)

const sampleUnit = `package com.example.app

import scala.collection.immutable.List
import com.example.util._

object Main {
  def run(): Unit = ()
}
`

func TestResolve_HeaderStructure(t *testing.T) {
	b := Resolve(sampleUnit)

	assert.Equal(t, len("package com.example.app\n"), b.PackageEnd)
	require.Len(t, b.Imports, 2)
	assert.Equal(t, "scala.collection.immutable.List", b.Imports[0].Path)
	assert.Equal(t, "com.example.util._", b.Imports[1].Path)

	// Import ends must point just past each clause's line
	first := sampleUnit[:b.Imports[0].End]
	assert.Equal(t, "package com.example.app\n\nimport scala.collection.immutable.List\n", first)
}

func TestResolve_NoHeader(t *testing.T) {
	b := Resolve("val x = 1\n")
	assert.Zero(t, b.PackageEnd)
	assert.Empty(t, b.Imports)
}

func TestHasImport(t *testing.T) {
	b := Resolve(sampleUnit)

	tests := []struct {
		name     string
		fqn      string
		expected bool
	}{
		{"exact match", "scala.collection.immutable.List", true},
		{"covered by wildcard", "com.example.util.Timer", true},
		{"wildcard covers direct members only", "com.example.util.sub.Deep", false},
		{"not imported", "scala.util.Try", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.HasImport(tt.fqn))
		})
	}
}

func TestImportEdits_AfterLastImport(t *testing.T) {
	b := Resolve(sampleUnit)
	var org Organizer

	edits, err := org.ImportEdits(b, "scala.util.Try")
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, b.Imports[1].End, edits[0].Start)
	assert.Equal(t, edits[0].Start, edits[0].End, "import edit is a pure insertion")
	assert.Equal(t, "import scala.util.Try\n", edits[0].Text)
}

func TestImportEdits_AfterPackageClause(t *testing.T) {
	b := Resolve("package a.b\n\nobject C\n")
	var org Organizer

	edits, err := org.ImportEdits(b, "x.y.Z")
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Equal(t, len("package a.b\n"), edits[0].Start)
	assert.Equal(t, "\nimport x.y.Z\n", edits[0].Text)
}

func TestImportEdits_BareUnit(t *testing.T) {
	b := Resolve("object C\n")
	var org Organizer

	edits, err := org.ImportEdits(b, "x.y.Z")
	require.NoError(t, err)
	require.Len(t, edits, 1)
	assert.Zero(t, edits[0].Start)
}

func TestImportEdits_AlreadyImported(t *testing.T) {
	b := Resolve(sampleUnit)
	var org Organizer

	edits, err := org.ImportEdits(b, "scala.collection.immutable.List")
	require.NoError(t, err)
	assert.Empty(t, edits, "existing import must not be duplicated")
}

func TestImportEdits_EmptyName(t *testing.T) {
	var org Organizer

	_, err := org.ImportEdits(Resolve(""), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidRequest))
}

func TestImportEdits_ApplyThroughEditor(t *testing.T) {
	// The organizer's offsets must splice cleanly through document.Editor
	b := Resolve(sampleUnit)
	var org Organizer
	var ed document.Editor

	edits, err := org.ImportEdits(b, "scala.util.Try")
	require.NoError(t, err)

	buf := document.NewText(sampleUnit)
	_, err = ed.ApplyAll(buf, 0, edits)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "import com.example.util._\nimport scala.util.Try\n")
}

func TestWithBinding_Available(t *testing.T) {
	unit := SourceUnit("file:///Main.scala", sampleUnit, zap.NewNop().Sugar())

	var seen *Binding
	ok, err := unit.WithBinding(func(b *Binding) error {
		seen = b
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, seen)
	assert.Equal(t, sampleUnit, seen.Source)
}

func TestWithBinding_Unavailable(t *testing.T) {
	unit := NewUnit("file:///Gone.scala", func() (*Binding, error) {
		return nil, errors.ErrNoBinding
	}, zap.NewNop().Sugar())

	called := false
	ok, err := unit.WithBinding(func(b *Binding) error {
		called = true
		return nil
	})
	require.NoError(t, err, "load failure means unavailable, not an error")
	assert.False(t, ok)
	assert.False(t, called, "callback must not run without a binding")
}

func TestWithBinding_CallbackError(t *testing.T) {
	unit := SourceUnit("file:///Main.scala", sampleUnit, zap.NewNop().Sugar())

	ok, err := unit.WithBinding(func(b *Binding) error {
		return errors.New("collaborator failed")
	})
	assert.True(t, ok)
	require.Error(t, err)
}
