// Package artifact atomically persists a crashing byte buffer into the
// harness's crash directory so a failure found in single-shot mode can be
// replayed without re-running the whole fuzzer.
//
// This mirrors the teacher's durable-write discipline
// (lock.go/cache_binary.go/internal/ticket/cache.go all route every
// on-disk mutation through github.com/natefinch/atomic rather than a
// bare os.WriteFile): a crash artifact that is half-written because the
// process aborted mid-write would be worse than no artifact at all.
//
// The core library owns no persisted state (spec.md §6); this package
// is used only by RunHarness's single-shot mode (harness.go) as a
// developer convenience and is never consulted by the
// generator/property/runner code itself.
package artifact

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Save atomically writes buf into dir, naming the file after testName
// and a content hash so repeated runs against the same failing input
// land on the same path instead of accumulating duplicates. It returns
// the path written.
func Save(dir, testName string, buf []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("artifact: creating %s: %w", dir, err)
	}

	sum := sha256.Sum256(buf)
	name := fmt.Sprintf("%s-%s", sanitize(testName), hex.EncodeToString(sum[:8]))
	path := filepath.Join(dir, name)

	if err := atomic.WriteFile(path, bytes.NewReader(buf)); err != nil {
		return "", fmt.Errorf("artifact: writing %s: %w", path, err)
	}

	return path, nil
}

func sanitize(name string) string {
	out := make([]rune, 0, len(name))

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-' || r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}

	if len(out) == 0 {
		return "test"
	}

	return string(out)
}
