package outputduplication

import (
	"errors"

	"golang.org/x/sys/unix"
)

const invalidNameChars = "\x00/"

const shmDir = "/dev/shm/"

type mapping struct {
	path   string
	unlink bool
}

// createMapping creates the segment, or maps an existing one with the same
// name without resizing it. Only the creating side unlinks the name.
func createMapping(name string, size int) ([]byte, mapping, error) {
	path := shmDir + name
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_EXCL|unix.O_RDWR|unix.O_CLOEXEC, 0o600)
	if errors.Is(err, unix.EEXIST) {
		return openMapping(name, size)
	}
	if err != nil {
		return nil, mapping{}, &PlatformError{API: "open " + path, Err: err}
	}
	defer unix.Close(fd)

	if err := unix.Ftruncate(fd, int64(size)); err != nil {
		unix.Unlink(path)
		return nil, mapping{}, &PlatformError{API: "ftruncate", Err: err}
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Unlink(path)
		return nil, mapping{}, &PlatformError{API: "mmap", Err: err}
	}
	return data, mapping{path: path, unlink: true}, nil
}

func openMapping(name string, size int) ([]byte, mapping, error) {
	path := shmDir + name
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, mapping{}, &PlatformError{API: "open " + path, Err: err}
	}
	defer unix.Close(fd)

	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, mapping{}, &PlatformError{API: "fstat", Err: err}
	}
	if st.Size < int64(size) {
		return nil, mapping{}, ErrInvalidBufferLength
	}
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, mapping{}, &PlatformError{API: "mmap", Err: err}
	}
	return data, mapping{path: path}, nil
}

func (m mapping) close(data []byte) error {
	var err error
	if data != nil {
		if merr := unix.Munmap(data); merr != nil {
			err = &PlatformError{API: "munmap", Err: merr}
		}
	}
	if m.unlink {
		if uerr := unix.Unlink(m.path); uerr != nil {
			err = errors.Join(err, &PlatformError{API: "unlink", Err: uerr})
		}
	}
	return err
}
