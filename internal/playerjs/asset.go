package playerjs

// Asset is one fetched player script together with its extracted
// cipher program. Once built it is never mutated and may be shared by
// any number of concurrent resolutions.
type Asset struct {
	path       string
	js         string
	program    Program
	extractErr error
}

// NewAsset parses the script eagerly so every later decipher call is a
// pure in-memory transform. Extraction failure is kept, not returned:
// the runtime fallback may still decipher.
func NewAsset(path, js string) *Asset {
	a := &Asset{path: path, js: js}
	a.program, a.extractErr = ExtractProgram(js)
	return a
}

// Path returns the player script path the asset was built from.
func (a *Asset) Path() string { return a.path }

// Program returns the extracted cipher program and any extraction
// error. A non-nil error means only the runtime fallback is available.
func (a *Asset) Program() (Program, error) {
	return a.program, a.extractErr
}

// DecipherSignature transforms a signature the way the player script
// would. The structural program is preferred; the goja runtime is the
// fallback. If both fail, the extraction error is surfaced so callers
// see why the script could not be interpreted.
func (a *Asset) DecipherSignature(sig string) (string, error) {
	if a.extractErr == nil {
		return string(a.program.Apply([]byte(sig))), nil
	}
	out, runtimeErr := decipherWithRuntime(a.js, sig)
	if runtimeErr == nil {
		return out, nil
	}
	return "", a.extractErr
}
