// filesystem/template.go
package filesystem

// ReadTemplate returns the page template at path. Like GroupFile it is not
// cached.
func ReadTemplate(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Readable reports whether path exists and can be read.
func Readable(path string) error {
	_, err := readFile(path)
	return err
}
