package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistrar struct {
	known    map[string]bool
	byHash   map[string]uuid.UUID
	received []Registration
}

func newFakeRegistrar(codes ...string) *fakeRegistrar {
	known := map[string]bool{}
	for _, c := range codes {
		known[c] = true
	}
	return &fakeRegistrar{known: known, byHash: map[string]uuid.UUID{}}
}

func (f *fakeRegistrar) RegisterDocument(_ context.Context, reg Registration) (uuid.UUID, bool, error) {
	f.received = append(f.received, reg)
	if id, ok := f.byHash[reg.HashHex]; ok {
		return id, true, nil
	}
	id := uuid.New()
	f.byHash[reg.HashHex] = id
	return id, false, nil
}

func (f *fakeRegistrar) ResolveTypeCode(_ context.Context, code string) (bool, error) {
	return f.known[code], nil
}

func writePDF(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestIngestPathRegistersDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contrato de obra.pdf")
	writePDF(t, path, "%PDF-1.4 contenido")

	reg := newFakeRegistrar("CONTRACT")
	ing := NewFSIngestor(reg, "CONTRACT", nil)

	res, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)
	assert.False(t, res.Deduplicated)
	assert.NotEqual(t, uuid.Nil, res.DocumentID)

	sum := sha256.Sum256([]byte("%PDF-1.4 contenido"))
	assert.Equal(t, hex.EncodeToString(sum[:]), res.HashHex)

	require.Len(t, reg.received, 1)
	got := reg.received[0]
	assert.Equal(t, "contrato de obra", got.Title)
	assert.Equal(t, "contrato de obra.pdf", got.FileName)
	assert.Equal(t, "application/pdf", got.MimeType)
	assert.Equal(t, int64(len("%PDF-1.4 contenido")), got.SizeBytes)
	assert.Equal(t, "CONTRACT", got.TypeCode)
}

func TestIngestPathTypeFromParentDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "po", "orden.pdf")
	writePDF(t, path, "%PDF po")

	reg := newFakeRegistrar("CONTRACT", "PO")
	ing := NewFSIngestor(reg, "CONTRACT", nil)

	_, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "PO", reg.received[0].TypeCode)
}

func TestIngestPathUnknownDirFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "misc", "doc.pdf")
	writePDF(t, path, "%PDF misc")

	reg := newFakeRegistrar("CONTRACT")
	ing := NewFSIngestor(reg, "CONTRACT", nil)

	_, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "CONTRACT", reg.received[0].TypeCode)
}

func TestIngestPathRejectsNonPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nota.txt")
	writePDF(t, path, "texto")

	ing := NewFSIngestor(newFakeRegistrar(), "CONTRACT", nil)
	_, err := ing.IngestPath(context.Background(), path)
	assert.Error(t, err)
}

func TestIngestPathDeduplicatesByHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	writePDF(t, a, "%PDF same bytes")
	writePDF(t, b, "%PDF same bytes")

	reg := newFakeRegistrar("CONTRACT")
	ing := NewFSIngestor(reg, "CONTRACT", nil)

	first, err := ing.IngestPath(context.Background(), a)
	require.NoError(t, err)
	second, err := ing.IngestPath(context.Background(), b)
	require.NoError(t, err)

	assert.False(t, first.Deduplicated)
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.DocumentID, second.DocumentID)
}

func TestIngestDirectory(t *testing.T) {
	root := t.TempDir()
	writePDF(t, filepath.Join(root, "contract", "uno.pdf"), "%PDF uno")
	writePDF(t, filepath.Join(root, "contract", "dos.pdf"), "%PDF dos")
	writePDF(t, filepath.Join(root, "notas.txt"), "ignorar")
	writePDF(t, filepath.Join(root, ".oculto", "tres.pdf"), "%PDF tres")

	reg := newFakeRegistrar("CONTRACT")
	ing := NewFSIngestor(reg, "CONTRACT", nil)

	results, stats, err := ing.IngestDirectory(context.Background(), root, true)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(0), stats.Failed)
}

func TestIngestDirectoryEmptyRoot(t *testing.T) {
	ing := NewFSIngestor(newFakeRegistrar(), "CONTRACT", nil)
	_, _, err := ing.IngestDirectory(context.Background(), "  ", false)
	assert.Error(t, err)
}
