package picker

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anduckhmt146/leetpick/internal/countdown"
	"github.com/anduckhmt146/leetpick/internal/ledger"
	"github.com/anduckhmt146/leetpick/internal/pool"
	"github.com/anduckhmt146/leetpick/internal/router"
	"github.com/anduckhmt146/leetpick/internal/screen"
	"github.com/anduckhmt146/leetpick/internal/selection"
	"github.com/anduckhmt146/leetpick/internal/store"
)

const testDoc = `| Num | Difficulty | Name | Problem | Pattern | Solution |
|---|---|---|---|---|---|
| 1 | Easy | Two Sum | [Two Sum](https://leetcode.com/problems/two-sum/) | Array | Hash Map |
| 2 | Easy | Valid Parentheses | [Valid Parentheses](https://leetcode.com/problems/valid-parentheses/) | Stack | Stack |
| 3 | Medium | Group Anagrams | [Group Anagrams](https://leetcode.com/problems/group-anagrams/) | String | Hash Map |
| 4 | Medium | Number of Islands | [Number of Islands](https://leetcode.com/problems/number-of-islands/) | Graph | DFS |
| 5 | Hard | Merge k Sorted Lists | [Merge k Sorted Lists](https://leetcode.com/problems/merge-k-sorted-lists/) | Linked List | Heap |
`

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "history" }
func (s *stubScreen) Title() string                           { return "History" }

type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time { return f.t }

type fixture struct {
	screen *PickerScreen
	ledger *ledger.Ledger
	clock  *fakeClock
	kv     *store.Memory
}

func newFixture(t *testing.T, doc string) *fixture {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemory()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}

	p := pool.Load(ctx, kv, pool.StaticSource(doc), nil)
	l := ledger.Load(ctx, kv, nil)
	cd := countdown.New(countdown.Options{Duration: time.Minute, KV: kv, Now: clock.Now})

	s := New(Deps{
		Pool:      p,
		Ledger:    l,
		Engine:    selection.NewSeeded(7),
		Countdown: cd,
		BatchSize: 3,
		History:   func() screen.Screen { return &stubScreen{} },
	})
	return &fixture{screen: s, ledger: l, clock: clock, kv: kv}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func names(f *fixture) []string {
	out := make([]string, 0, len(f.screen.batch))
	for _, q := range f.screen.batch {
		out = append(out, q.Name)
	}
	return out
}

func TestPicker_InitialBatch(t *testing.T) {
	f := newFixture(t, testDoc)
	if len(f.screen.batch) != 3 {
		t.Fatalf("batch size = %d, want 3", len(f.screen.batch))
	}
	if f.screen.Title() != "Pick" {
		t.Errorf("Title = %q", f.screen.Title())
	}
}

func TestPicker_InitStartsCountdown(t *testing.T) {
	f := newFixture(t, testDoc)
	cmd := f.screen.Init()
	if cmd == nil {
		t.Fatal("expected a tick command")
	}
	if f.screen.timer != countdown.Running {
		t.Errorf("timer = %v, want running", f.screen.timer)
	}
	if _, ok, _ := f.kv.Get(context.Background(), store.KeyCountdownStart); !ok {
		t.Error("expected the countdown anchor to be persisted")
	}
}

func TestPicker_ToggleDoesNotRepick(t *testing.T) {
	f := newFixture(t, testDoc)
	before := names(f)

	f.screen.Update(specialKey(tea.KeyEnter))
	if !f.ledger.Has(before[0]) {
		t.Errorf("expected %q completed", before[0])
	}
	if strings.Join(names(f), ",") != strings.Join(before, ",") {
		t.Error("toggling should keep the current batch")
	}

	f.screen.Update(keyPress(' '))
	if f.ledger.Has(before[0]) {
		t.Errorf("expected %q reverted", before[0])
	}
}

func TestPicker_CursorMovement(t *testing.T) {
	f := newFixture(t, testDoc)

	f.screen.Update(specialKey(tea.KeyUp))
	if f.screen.cursor != 0 {
		t.Errorf("cursor = %d, want 0", f.screen.cursor)
	}
	for range 5 {
		f.screen.Update(specialKey(tea.KeyDown))
	}
	if f.screen.cursor != 2 {
		t.Errorf("cursor = %d, want 2", f.screen.cursor)
	}

	target := f.screen.batch[2].Name
	f.screen.Update(specialKey(tea.KeyEnter))
	if !f.ledger.Has(target) {
		t.Errorf("expected selected %q completed", target)
	}
}

func TestPicker_RepickNeedsConfirmation(t *testing.T) {
	f := newFixture(t, testDoc)
	before := strings.Join(names(f), ",")

	f.screen.Update(keyPress('r'))
	if f.screen.pending == nil || f.screen.pending.kind != actionRepick {
		t.Fatal("expected repick confirmation")
	}
	if !strings.Contains(f.screen.View(80, 30), "Pick a new batch?") {
		t.Error("expected dialog in view")
	}

	f.screen.Update(keyPress('n'))
	if f.screen.pending != nil {
		t.Error("expected dialog dismissed")
	}
	if strings.Join(names(f), ",") != before {
		t.Error("cancel should keep the batch")
	}
}

func TestPicker_RepickExcludesCompleted(t *testing.T) {
	f := newFixture(t, testDoc)
	ctx := context.Background()
	for _, n := range []string{"Two Sum", "Valid Parentheses"} {
		if _, err := f.ledger.Toggle(ctx, n); err != nil {
			t.Fatal(err)
		}
	}

	f.screen.Update(keyPress('r'))
	_, cmd := f.screen.Update(keyPress('y'))
	if cmd != nil {
		t.Error("repick should not emit a command")
	}
	got := names(f)
	if len(got) != 3 {
		t.Fatalf("batch size = %d, want 3", len(got))
	}
	for _, n := range got {
		if f.ledger.Has(n) {
			t.Errorf("batch contains completed %q", n)
		}
	}
}

func TestPicker_EscCancelsDialog(t *testing.T) {
	f := newFixture(t, testDoc)
	f.screen.Update(keyPress('h'))
	f.screen.Update(specialKey(tea.KeyEscape))
	if f.screen.pending != nil {
		t.Error("esc should dismiss the dialog")
	}
}

func TestPicker_HistoryPushesScreen(t *testing.T) {
	f := newFixture(t, testDoc)
	f.screen.Init()
	gen := f.screen.gen

	f.screen.Update(keyPress('h'))
	if f.screen.pending == nil || f.screen.pending.kind != actionViewHistory {
		t.Fatal("expected history confirmation")
	}
	_, cmd := f.screen.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected navigation command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "History" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
	if f.screen.gen == gen {
		t.Error("opening history should release the tick chain")
	}
}

func TestPicker_StaleTickIgnored(t *testing.T) {
	f := newFixture(t, testDoc)
	f.screen.Init()

	f.screen.Update(keyPress('h'))
	f.screen.Update(keyPress('y'))

	_, cmd := f.screen.Update(tickMsg{gen: 0})
	if cmd != nil {
		t.Error("a stale tick must not re-arm")
	}

	cmd = f.screen.Resume()
	if cmd == nil {
		t.Fatal("resume should re-arm the tick")
	}
	_, cmd = f.screen.Update(tickMsg{gen: f.screen.gen})
	if cmd == nil {
		t.Error("a current tick should re-arm")
	}
}

func TestPicker_CountdownExpires(t *testing.T) {
	f := newFixture(t, testDoc)
	f.screen.Init()
	if !strings.Contains(f.screen.View(80, 30), "01:00") {
		t.Error("expected full countdown in view")
	}

	f.clock.t = f.clock.t.Add(2 * time.Minute)
	_, cmd := f.screen.Update(tickMsg{gen: f.screen.gen})
	if cmd != nil {
		t.Error("ticking should stop once expired")
	}
	if !strings.Contains(f.screen.View(80, 30), "Time's up") {
		t.Error("expected expiry notice")
	}
}

func TestPicker_AllCompleted(t *testing.T) {
	doc := "| 1 | Easy | Only | [Only](u) | P | S |\n"
	kv := store.NewMemory()
	ctx := context.Background()
	p := pool.Load(ctx, kv, pool.StaticSource(doc), nil)
	l := ledger.Load(ctx, kv, nil)
	if _, err := l.Toggle(ctx, "Only"); err != nil {
		t.Fatal(err)
	}

	s := New(Deps{Pool: p, Ledger: l})
	if len(s.batch) != 0 {
		t.Fatalf("expected empty batch, got %d", len(s.batch))
	}
	if !strings.Contains(s.View(80, 30), "All questions completed!") {
		t.Error("expected completion message")
	}
	// Toggle on an empty batch is a no-op.
	s.Update(specialKey(tea.KeyEnter))
	if !l.Has("Only") {
		t.Error("ledger should be unchanged")
	}
}

func TestPicker_Progress(t *testing.T) {
	f := newFixture(t, testDoc)
	f.screen.Update(specialKey(tea.KeyEnter))

	p := f.screen.Progress()
	if p.Done != 1 || p.Total != 5 {
		t.Errorf("progress = %+v, want 1/5", p)
	}
	if !strings.Contains(f.screen.View(80, 30), "1/5") {
		t.Error("expected progress in view")
	}
}

func TestPicker_KeyHints(t *testing.T) {
	f := newFixture(t, testDoc)
	if len(f.screen.KeyHints()) != 5 {
		t.Errorf("expected 5 hints, got %d", len(f.screen.KeyHints()))
	}
	f.screen.Update(keyPress('r'))
	hints := f.screen.KeyHints()
	if len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("unexpected dialog hints %+v", hints)
	}
}

func TestPicker_Quit(t *testing.T) {
	f := newFixture(t, testDoc)
	_, cmd := f.screen.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
