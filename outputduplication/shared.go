package outputduplication

import (
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// SharedBuffer is a Buffer backed by a named shared memory mapping, so frames
// captured by one process can be read by another.
type SharedBuffer struct {
	name    string
	data    []byte
	mapping mapping
	log     *zap.Logger
	once    sync.Once
}

// CreateSharedBuffer creates the named mapping of size bytes.
func CreateSharedBuffer(name string, size int, opts ...Option) (*SharedBuffer, error) {
	o := newOptions(opts)
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, m, err := createMapping(name, size)
	if err != nil {
		return nil, err
	}
	o.log.Debug("created shared buffer", zap.String("name", name), zap.Int("size", size))
	return newSharedBuffer(name, data, m, o.log), nil
}

// OpenSharedBuffer maps an existing mapping created by CreateSharedBuffer.
// It fails when no mapping with that name exists.
func OpenSharedBuffer(name string, size int, opts ...Option) (*SharedBuffer, error) {
	o := newOptions(opts)
	if err := validateName(name); err != nil {
		return nil, err
	}
	data, m, err := openMapping(name, size)
	if err != nil {
		return nil, err
	}
	o.log.Debug("opened shared buffer", zap.String("name", name), zap.Int("size", size))
	return newSharedBuffer(name, data, m, o.log), nil
}

func newSharedBuffer(name string, data []byte, m mapping, log *zap.Logger) *SharedBuffer {
	b := &SharedBuffer{
		name:    name,
		data:    data,
		mapping: m,
		log:     log,
	}
	runtime.SetFinalizer(b, func(b *SharedBuffer) {
		b.log.Warn("shared buffer was not closed", zap.String("name", b.name))
		b.Close()
	})
	return b
}

func (b *SharedBuffer) Name() string  { return b.name }
func (b *SharedBuffer) Bytes() []byte { return b.data }
func (b *SharedBuffer) Len() int      { return len(b.data) }

// Close unmaps the view and closes the mapping. Only the first call has an
// effect, failures are logged.
func (b *SharedBuffer) Close() error {
	b.once.Do(func() {
		runtime.SetFinalizer(b, nil)
		if err := b.mapping.close(b.data); err != nil {
			b.log.Warn("closing shared buffer", zap.String("name", b.name), zap.Error(err))
		}
		b.data = nil
	})
	return nil
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, invalidNameChars) {
		return ErrInvalidName
	}
	return nil
}
