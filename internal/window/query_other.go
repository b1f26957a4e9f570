//go:build !unix

package window

func query(int) Terminal {
	return Terminal{}
}

func reportTTY(string, string) (float32, float32, bool) {
	return 0, 0, false
}
