package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_ReadUnseenUser(t *testing.T) {
	s := NewStore()
	require.Empty(t, s.Read("ghost"))
	require.Zero(t, s.Len("ghost"))
}

func TestStore_AppendAndRead(t *testing.T) {
	s := NewStore()

	n := s.Append("alice", []Entry{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}, ChatCap)
	require.Equal(t, 2, n)

	got := s.Read("alice")
	require.Len(t, got, 2)
	require.Equal(t, Entry{Role: RoleUser, Content: "hi"}, got[0])
	require.Equal(t, Entry{Role: RoleAssistant, Content: "hello"}, got[1])
}

func TestStore_CapKeepsMostRecentInOrder(t *testing.T) {
	s := NewStore()

	for i := 0; i < 60; i++ {
		s.Append("alice", []Entry{{Role: RoleUser, Content: fmt.Sprintf("msg-%d", i)}}, ChatCap)
	}

	got := s.Read("alice")
	require.Len(t, got, ChatCap)
	// oldest 10 discarded; survivors keep original relative order
	require.Equal(t, "msg-10", got[0].Content)
	require.Equal(t, "msg-59", got[len(got)-1].Content)
}

func TestStore_SingleOversizedBatchIsTrimmed(t *testing.T) {
	s := NewStore()

	batch := make([]Entry, 500)
	for i := range batch {
		batch[i] = Entry{Role: RoleUser, Content: fmt.Sprintf("bulk-%d", i)}
	}
	n := s.Append("bob", batch, UpsertCap)
	require.Equal(t, UpsertCap, n)

	got := s.Read("bob")
	require.Len(t, got, UpsertCap)
	require.Equal(t, "bulk-300", got[0].Content)
	require.Equal(t, "bulk-499", got[len(got)-1].Content)
}

func TestStore_UsersAreIsolated(t *testing.T) {
	s := NewStore()
	s.Append("alice", []Entry{{Role: RoleUser, Content: "a"}}, ChatCap)
	s.Append("bob", []Entry{{Role: RoleUser, Content: "b"}}, ChatCap)

	require.Equal(t, "a", s.Read("alice")[0].Content)
	require.Equal(t, "b", s.Read("bob")[0].Content)
}

func TestStore_ReadReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append("alice", []Entry{{Role: RoleUser, Content: "original"}}, ChatCap)

	got := s.Read("alice")
	got[0].Content = "mutated"

	require.Equal(t, "original", s.Read("alice")[0].Content)
}

func TestStore_ConcurrentAppends(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := fmt.Sprintf("user-%d", i%4)
			s.LockUser(user)
			defer s.UnlockUser(user)
			s.Append(user, []Entry{{Role: RoleUser, Content: "x"}}, ChatCap)
		}(i)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 4; i++ {
		total += s.Len(fmt.Sprintf("user-%d", i))
	}
	require.Equal(t, 100, total)
}
