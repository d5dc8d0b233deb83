package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/exampler/pkg/directive"
	"github.com/walteh/exampler/pkg/example"
	"github.com/walteh/exampler/pkg/operation"
	"github.com/walteh/exampler/pkg/watch"
)

const javaSource = `public class Example {
    public int zero() {
        return 0;
    }
}`

func examples(t *testing.T) *example.Registry {
	t.Helper()
	reg, errs := example.Build(context.Background(), directive.NewRegistry(), []example.Entry{
		{ID: "zero", Record: example.Record{Usage: "constant", From: "group zero", To: "group zero", In: "Example.java"}},
	})
	require.Empty(t, errs)
	return reg
}

func TestNew_Validation(t *testing.T) {
	_, err := watch.New(watch.Options{OnResult: func(operation.Result) {}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "examples are required")

	_, err = watch.New(watch.Options{Examples: examples(t)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result callback is required")
}

func TestWatcher_ReextractsOnWrite(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(sub, 0755))

	results := make(chan operation.Result, 8)
	w, err := watch.New(watch.Options{
		Root:     root,
		Examples: examples(t),
		Debounce: 100 * time.Millisecond,
		OnResult: func(r operation.Result) { results <- r },
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never became ready")
	}

	// unregistered files do not produce results
	require.NoError(t, os.WriteFile(filepath.Join(sub, "notes.txt"), []byte("hello"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Example.java"), []byte(javaSource), 0644))

	// a flush can land between the create and the write, so wait for a clean one
	deadline := time.After(5 * time.Second)
	var got operation.Result
	for got.Snippet == "" {
		select {
		case r := <-results:
			assert.Equal(t, "src/Example.java", r.File.Path)
			assert.Equal(t, "zero", r.ExampleID)
			got = r
		case <-deadline:
			t.Fatal("no clean result after writing a registered file")
		}
	}
	assert.NoError(t, got.Err)
	assert.Equal(t, "public int zero() {\n    return 0;\n}", got.Snippet)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err, "cancellation should stop the watcher cleanly")
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
