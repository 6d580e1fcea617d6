package creational

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
)

// DatabaseManager is the shared connection owner. The process holds exactly
// one, created lazily on first use.
type DatabaseManager struct {
	id string
}

var (
	managerOnce sync.Once
	manager     *DatabaseManager
)

// Manager returns the process-wide DatabaseManager, creating it on the
// first call.
func Manager() *DatabaseManager {
	managerOnce.Do(func() {
		manager = &DatabaseManager{id: uuid.NewString()}
	})
	return manager
}

// ID identifies this instance so callers can observe sharing.
func (m *DatabaseManager) ID() string { return m.id }

// Query pretends to execute a statement against the shared connection.
func (m *DatabaseManager) Query(stmt string) string {
	return fmt.Sprintf("[conn %.8s] executed: %s", m.id, stmt)
}

func DemoSingleton(w io.Writer) error {
	first := Manager()
	second := Manager()
	fmt.Fprintf(w, "first acquisition:  %.8s\n", first.ID())
	fmt.Fprintf(w, "second acquisition: %.8s\n", second.ID())
	fmt.Fprintf(w, "same instance: %t\n", first == second)
	fmt.Fprintln(w, first.Query("SELECT 1"))
	return nil
}
