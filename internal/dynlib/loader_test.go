package dynlib

import (
	"fmt"
	"strings"
	"testing"

	"qec/internal/diag"
)

type fakeLoader struct {
	loaded []string
	fail   map[string]bool
}

func (l *fakeLoader) Load(path string) error {
	if l.fail[path] {
		return fmt.Errorf("bad plugin")
	}
	l.loaded = append(l.loaded, path)
	return nil
}

func TestLoadAll_FailureWarnsAndContinues(t *testing.T) {
	loader := &fakeLoader{fail: map[string]bool{"b.so": true}}
	bag := diag.NewBag(8)

	LoadAll(loader, []string{"a.so", "b.so", "c.so"}, bag)

	if len(loader.loaded) != 2 || loader.loaded[0] != "a.so" || loader.loaded[1] != "c.so" {
		t.Fatalf("loaded = %v", loader.loaded)
	}
	if bag.Len() != 1 {
		t.Fatalf("warnings = %d", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != diag.SevWarning {
		t.Fatalf("severity = %s", d.Severity)
	}
	if !strings.Contains(d.Message, "failed to load plugin from 'b.so'") {
		t.Fatalf("message = %q", d.Message)
	}
	if !strings.Contains(d.Message, "Request ignored.") {
		t.Fatalf("message = %q", d.Message)
	}
	if bag.HasErrors() {
		t.Fatalf("load failures must stay warnings")
	}
}

func TestLoadAll_EmptyPathList(t *testing.T) {
	loader := &fakeLoader{}
	bag := diag.NewBag(8)
	LoadAll(loader, nil, bag)
	if len(loader.loaded) != 0 || bag.Len() != 0 {
		t.Fatalf("nothing should happen for an empty list")
	}
}
