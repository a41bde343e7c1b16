package util

import "golang.org/x/sys/unix"

// FreeDiskSpace returns the free bytes of the filesystem holding path.
func FreeDiskSpace(path string) (uint64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, err
	}
	return st.Bavail * uint64(st.Bsize), nil
}
