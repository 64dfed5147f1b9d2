package state

import (
	"fmt"
	"testing"
)

func TestApplyReplacesPlayerOutright(t *testing.T) {
	st := ClientState{Player: &Player{Name: "carter", Stats: Stats{StatHealth: 10}}}
	next := st.Apply(&Update{Player: &Player{Name: "carter", Stats: Stats{StatHealth: 5}}}, 100)

	if next.Player.Stats[StatHealth] != 5 {
		t.Fatalf("player not replaced: %v", next.Player.Stats)
	}
	if st.Player.Stats[StatHealth] != 10 {
		t.Fatal("previous snapshot mutated")
	}
}

func TestApplyAppendsMessagesInOrder(t *testing.T) {
	st := ClientState{Messages: []ChatMessage{{Text: "first"}}}
	next := st.Apply(&Update{Messages: []ChatMessage{{Text: "second"}, {Text: "third"}}}, 100)

	if len(next.Messages) != 3 {
		t.Fatalf("len = %d, want 3", len(next.Messages))
	}
	for i, want := range []string{"first", "second", "third"} {
		if next.Messages[i].Text != want {
			t.Fatalf("messages[%d] = %q, want %q", i, next.Messages[i].Text, want)
		}
	}
	if len(st.Messages) != 1 {
		t.Fatal("previous snapshot mutated")
	}
}

func TestApplyTrimsHistory(t *testing.T) {
	st := ClientState{}
	for i := 0; i < 7; i++ {
		st = st.Apply(&Update{Messages: []ChatMessage{{Text: fmt.Sprintf("msg-%d", i)}}}, 5)
	}

	if len(st.Messages) != 5 {
		t.Fatalf("len = %d, want 5", len(st.Messages))
	}
	if st.Messages[0].Text != "msg-2" || st.Messages[4].Text != "msg-6" {
		t.Fatalf("trim kept wrong window: first=%q last=%q", st.Messages[0].Text, st.Messages[4].Text)
	}
}

func TestApplyEmptyUpdateLeavesStateUntouched(t *testing.T) {
	st := ClientState{Player: &Player{Name: "carter"}, Messages: []ChatMessage{{Text: "hello"}}}
	next := st.Apply(&Update{}, 100)

	if next.Player != st.Player || len(next.Messages) != 1 {
		t.Fatal("empty update should change nothing")
	}
}

func TestStatsCloneIsIndependent(t *testing.T) {
	orig := Stats{StatHealth: 3}
	clone := orig.Clone()
	clone[StatHealth] = 9

	if orig[StatHealth] != 3 {
		t.Fatal("clone shares storage with original")
	}
}
