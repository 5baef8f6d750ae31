package common

// WipeByteArray overwrites the buffer with zeros. Use it to clear
// passwords and other secrets once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
