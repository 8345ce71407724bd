package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmcarrillo/docuflow/constants"
)

// Registration carries everything the store needs to create a document with
// its first version.
type Registration struct {
	Title     string
	TypeCode  string
	FilePath  string
	FileName  string
	MimeType  string
	HashHex   string
	SizeBytes int64
}

// Registrar is the persistence boundary for intake.
type Registrar interface {
	// RegisterDocument creates the document, or reports the existing one when
	// the content hash is already known (deduplicated=true).
	RegisterDocument(ctx context.Context, reg Registration) (uuid.UUID, bool, error)
	// ResolveTypeCode reports whether a type record exists for code.
	ResolveTypeCode(ctx context.Context, code string) (bool, error)
}

// FSIngestor reads from the local filesystem.
type FSIngestor struct {
	Registry    Registrar
	DefaultType string
	Logger      *slog.Logger
}

func NewFSIngestor(registry Registrar, defaultType string, logger *slog.Logger) *FSIngestor {
	if defaultType == "" {
		defaultType = string(constants.TypeContract)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{Registry: registry, DefaultType: defaultType, Logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (Result, error) {
	var out Result

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, fmt.Errorf("resolve path: %w", err)
	}
	out.SourcePath = abs

	if !allowedExt(abs) {
		return out, fmt.Errorf("unsupported extension: %q", filepath.Ext(abs))
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, fmt.Errorf("open: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return out, fmt.Errorf("hash: %w", err)
	}
	out.HashHex = hex.EncodeToString(h.Sum(nil))

	typeCode, err := i.typeCodeFor(ctx, abs)
	if err != nil {
		return out, err
	}

	name := filepath.Base(abs)
	id, dedup, err := i.Registry.RegisterDocument(ctx, Registration{
		Title:     strings.TrimSuffix(name, filepath.Ext(name)),
		TypeCode:  typeCode,
		FilePath:  abs,
		FileName:  name,
		MimeType:  "application/pdf",
		HashHex:   out.HashHex,
		SizeBytes: size,
	})
	if err != nil {
		return out, err
	}
	out.DocumentID = id
	out.Deduplicated = dedup
	out.UploadedAt = time.Now().UTC()

	i.Logger.Info("ingest.registered",
		"path", abs,
		"document_id", id,
		"type_code", typeCode,
		"deduplicated", dedup,
	)
	return out, nil
}

// typeCodeFor derives the declared type from the parent directory name when
// it matches a known type record.
func (i *FSIngestor) typeCodeFor(ctx context.Context, abs string) (string, error) {
	candidate := constants.NormalizeTypeCode(filepath.Base(filepath.Dir(abs)))
	if candidate != "" {
		known, err := i.Registry.ResolveTypeCode(ctx, candidate)
		if err != nil {
			return "", err
		}
		if known {
			return candidate, nil
		}
	}
	return i.DefaultType, nil
}

// IngestDirectory walks root and registers every PDF it finds. Per-file
// failures are collected, not fatal.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]Result, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []Result
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		stats.Scanned++
		if walkErr != nil {
			results = append(results, Result{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !allowedExt(path) {
			return nil
		}
		stats.Matched++

		res, err := i.IngestPath(ctx, path)
		if err != nil {
			res.Err = err.Error()
			results = append(results, res)
			stats.Failed++
			return nil
		}
		results = append(results, res)
		if res.Deduplicated {
			stats.Deduplicated++
		} else {
			stats.Succeeded++
		}
		return nil
	})
	return results, stats, err
}
