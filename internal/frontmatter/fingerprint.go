package frontmatter

import (
	"strings"

	"github.com/inful/mdfp"
)

// FingerprintField is the frontmatter key holding the content fingerprint.
const FingerprintField = mdfp.FingerprintField

// Fingerprint computes the canonical fingerprint of a page. The
// fingerprint field itself is excluded from the hash, so stamping a page
// does not change its fingerprint.
func Fingerprint(fields map[string]string, body []byte) (string, error) {
	forHash := make(map[string]string, len(fields))
	for k, v := range fields {
		if k == FingerprintField {
			continue
		}
		forHash[k] = v
	}

	fm := ""
	if len(forHash) > 0 {
		serialized, err := SerializeYAML(forHash)
		if err != nil {
			return "", err
		}
		fm = strings.TrimSuffix(string(serialized), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}

// Stamp sets the fingerprint field and reports whether it changed.
func Stamp(fields map[string]string, body []byte) (string, bool, error) {
	fp, err := Fingerprint(fields, body)
	if err != nil {
		return "", false, err
	}
	if fields[FingerprintField] == fp {
		return fp, false, nil
	}
	fields[FingerprintField] = fp
	return fp, true, nil
}
