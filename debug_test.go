package sprig

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stderr = w
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()
	defer func() { os.Stderr = old }()
	fn()
	_ = w.Close()
	return <-done
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.Root().AddChild(parent)

	child := NewSprite("child", TextureRegion{OriginalW: 10, OriginalH: 10})
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()

	child := NewSprite("child", TextureRegion{OriginalW: 10, OriginalH: 10})

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild to disposed parent, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestReleaseMode_DisposedNodeNoOp(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(false)

	child := NewSprite("child", TextureRegion{OriginalW: 10, OriginalH: 10})
	child.Dispose()

	// In release mode, adding a disposed child should not panic.
	// It still won't work correctly but it won't crash.
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if strings.Contains(msg, "disposed") {
				t.Errorf("release mode should not panic on disposed node, got: %s", msg)
			}
		}
	}()

	// This may panic for other reasons (cycle check with nil parent chain),
	// but not for "disposed" reasons.
	s.Root().AddChild(child)
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	// Build a chain deeper than debugMaxTreeDepth (32).
	output := captureStderr(t, func() {
		current := s.Root()
		for i := 0; i < debugMaxTreeDepth+5; i++ {
			child := NewContainer(fmt.Sprintf("depth_%d", i))
			current.AddChild(child)
			current = child
		}
	})

	if !strings.Contains(output, "warning: tree depth") {
		t.Errorf("expected tree depth warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("many_children")
	s.Root().AddChild(parent)

	output := captureStderr(t, func() {
		for i := 0; i < debugMaxChildCount+1; i++ {
			child := NewContainer(fmt.Sprintf("c_%d", i))
			parent.AddChild(child)
		}
	})

	if !strings.Contains(output, "warning: node") || !strings.Contains(output, "children") {
		t.Errorf("expected child count warning in stderr, got: %q", output)
	}
}

func TestDebugMode_MissingCapabilityWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	c := NewContainer("box")
	output := captureStderr(t, func() {
		c.RunAction(Group(MoveTo(1, 1, 1), SetTexture(TextureRegion{}, false)))
	})
	if !strings.Contains(output, `"box"`) || !strings.Contains(output, "lacks texture") {
		t.Errorf("expected capability warning, got: %q", output)
	}
	if !c.HasActions() {
		t.Error("action was not attached")
	}
}

func TestDebugMode_NoWarningWhenSupported(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewSprite("hero", TextureRegion{})
	output := captureStderr(t, func() {
		n.RunAction(Sequence(MoveTo(1, 1, 1), FadeOut(1), SetTexture(TextureRegion{}, true)))
	})
	if output != "" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestDebugMode_DurationWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	output := captureStderr(t, func() {
		_ = Wait(-2)
		_ = Wait(math.NaN())
		_ = Wait(0)
	})
	if n := strings.Count(output, "runs as instant"); n != 2 {
		t.Errorf("duration warnings = %d, want 2; output: %q", n, output)
	}
}

func TestReleaseMode_NoDurationWarning(t *testing.T) {
	output := captureStderr(t, func() {
		_ = Wait(-2)
	})
	if output != "" {
		t.Errorf("release mode wrote %q", output)
	}
}

func TestDebugMode_StepStats(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	a := NewContainer("a")
	b := NewContainer("b")
	s.Root().AddChild(a)
	a.AddChild(b)
	b.RunAction(Wait(1))
	b.RunAction(Wait(2))

	output := captureStderr(t, func() {
		s.Step(0.1)
	})
	if !strings.Contains(output, "nodes: 3 | active: 1 | actions: 2") {
		t.Errorf("unexpected stats line: %q", output)
	}
}

func TestReleaseMode_NoStats(t *testing.T) {
	s := NewScene()
	output := captureStderr(t, func() {
		s.Step(0.1)
	})
	if output != "" {
		t.Errorf("release mode wrote %q", output)
	}
}
