package structural

import (
	"fmt"
	"io"
)

// archiveStore stands in for an expensive-to-open subject.
type archiveStore struct {
	records map[string]string
}

func openArchiveStore() *archiveStore {
	return &archiveStore{records: map[string]string{
		"q3-report": "revenue up 4%",
		"roadmap":   "ship patterns v1",
	}}
}

func (s *archiveStore) Fetch(name string) (string, error) {
	record, ok := s.records[name]
	if !ok {
		return "", fmt.Errorf("no such record: %s", name)
	}
	return record, nil
}

// StoreProxy guards the archive and defers opening it until the first
// authorized fetch.
type StoreProxy struct {
	allowed map[string]bool
	store   *archiveStore
	opens   int
}

func NewStoreProxy(allowedRoles ...string) *StoreProxy {
	allowed := make(map[string]bool, len(allowedRoles))
	for _, role := range allowedRoles {
		allowed[role] = true
	}
	return &StoreProxy{allowed: allowed}
}

func (p *StoreProxy) Fetch(role, name string) (string, error) {
	if !p.allowed[role] {
		return "", fmt.Errorf("role %s may not read the archive", role)
	}
	if p.store == nil {
		p.store = openArchiveStore()
		p.opens++
	}
	return p.store.Fetch(name)
}

// Opened reports whether the real subject has been constructed.
func (p *StoreProxy) Opened() bool { return p.store != nil }

func DemoProxy(w io.Writer) error {
	proxy := NewStoreProxy("analyst")

	if _, err := proxy.Fetch("intern", "q3-report"); err != nil {
		fmt.Fprintf(w, "denied: %v\n", err)
	}
	fmt.Fprintf(w, "archive opened after denial: %t\n", proxy.Opened())

	record, err := proxy.Fetch("analyst", "q3-report")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "analyst reads q3-report: %s\n", record)
	fmt.Fprintf(w, "archive opened: %t\n", proxy.Opened())
	return nil
}
