package storefakes

import (
	"sync"

	"github.com/abiy5791/RobelStudio-sub001/credentials"
)

var _ credentials.Store = (*FakeStore)(nil)

// FakeStore is an in-memory credentials.Store for tests. Writes can be
// forced to fail to exercise the best-effort contract.
type FakeStore struct {
	lock       sync.RWMutex
	values     map[string]string
	FailWrites bool
}

func NewFakeStore() *FakeStore {
	return &FakeStore{values: make(map[string]string)}
}

func (f *FakeStore) Get(name string) string {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.values[name]
}

func (f *FakeStore) Set(name, value string) {
	if f.FailWrites {
		return
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	f.values[name] = value
}

func (f *FakeStore) Clear(name string) {
	if f.FailWrites {
		return
	}
	f.lock.Lock()
	defer f.lock.Unlock()
	delete(f.values, name)
}
