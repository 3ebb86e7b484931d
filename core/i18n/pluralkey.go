package i18n

// PluralKey returns the fully-qualified lookup key for a pluralized base
// key: "<namespace>:plurals.<base>". The namespace defaults to
// DefaultNamespace when omitted or empty.
//
// The function is pure: identical inputs always produce byte-identical
// output, with no locale or count branching. The returned key is passed to
// T together with a "count" placeholder; variant selection happens there.
func PluralKey(base string, namespace ...string) string {
	ns := DefaultNamespace
	if len(namespace) > 0 && namespace[0] != "" {
		ns = namespace[0]
	}
	return ns + ":plurals." + base
}
