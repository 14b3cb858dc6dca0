// Package configs loads CUE documents, validates them against a closed
// schema and decodes paths into Go values.
package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads its documents once, on first use.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

// Document is an in-memory CUE source.
type Document struct {
	Name    string
	Content []byte
}

// NewLoader returns a Loader over the CUE files at filePaths. When
// schemaSrc is not empty, every file must unify with close({schemaSrc}).
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return newLoader(schemaSrc, func() ([]Document, error) {
		docs := make([]Document, 0, len(filePaths))
		for _, filePath := range filePaths {
			content, err := os.ReadFile(filePath)
			if err != nil {
				return nil, err
			}
			docs = append(docs, Document{Name: filePath, Content: content})
		}
		return docs, nil
	})
}

// NewDocumentLoader is like NewLoader for documents already in memory.
func NewDocumentLoader(docs []Document, schemaSrc string) Loader {
	return newLoader(schemaSrc, func() ([]Document, error) {
		return docs, nil
	})
}

func newLoader(schemaSrc string, read func() ([]Document, error)) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({"+schemaSrc+"})", cue.Filename("schema.cue"))
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("configs: schema: %w", err)
				}
			}

			docs, err := read()
			if err != nil {
				return nil, err
			}

			for _, doc := range docs {
				value := ctx.CompileBytes(doc.Content, cue.Filename(doc.Name))
				if err := value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, err
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  doc.Name,
				})
			}

			return
		}),
	}
}

type rootInfo struct {
	value cue.Value
	path  string
}

// Err reports the error, if any, of loading and validating the documents.
func (l Loader) Err() error {
	_, err := l.getRoots()
	return err
}

// IterCueValues yields the value at path of every document defining it, in
// load order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if err := value.Err(); err == nil && value.Exists() {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

// AssignFirst decodes the first value found at path into target.
func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return fmt.Errorf("%w: %s", ErrValueNotFound, path)
}
