package gitoxide

// pushPathComponent appends name to buf, with a '/' separator first if
// buf is non-empty, and returns the prior length so the caller can
// cheaply truncate back. It panics if buf ends in '/' already: the
// buffer must never carry a trailing separator between operations.
func pushPathComponent(buf []byte, name []byte) (newBuf []byte, priorLen int) {
	if len(buf) > 0 && buf[len(buf)-1] == '/' {
		panic("gitoxide: path scratch buffer must not end in '/'")
	}

	priorLen = len(buf)
	if len(buf) > 0 {
		buf = append(buf, '/')
	}

	buf = append(buf, name...)
	return buf, priorLen
}

// basename returns the final slash-separated component of path.
func basename(path []byte) []byte {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}

	return path
}
