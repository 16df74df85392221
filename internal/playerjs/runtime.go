package playerjs

import (
	"errors"
	"regexp"

	"github.com/dop251/goja"
)

// Runtime fallback: when structural extraction fails we try to run the
// real decipher routine under goja. A script whose transforms fall
// outside the known instruction set still deciphers correctly here.

var entrySourceRegexp = regexp.MustCompile(
	`function(?:\s+` + jsVarStr + `)?\(a\)\{` +
		`a=a\.split\([^\)]*\);` +
		`[\s\S]*?` +
		`return a\.join\([^\)]*\)` +
		`\}`)

func decipherWithRuntime(js, sig string) (string, error) {
	entrySource := entrySourceRegexp.FindString(js)
	if entrySource == "" {
		return "", errors.New("playerjs: runtime decipher entry not found")
	}

	calls := callSiteRegexp.FindAllStringSubmatch(entrySource, 1)
	if len(calls) == 0 {
		return "", errors.New("playerjs: runtime decipher has no transform calls")
	}
	objSource, err := findTransformObjectSource(js, calls[0][1])
	if err != nil {
		return "", err
	}

	const fnName = "ytkitDecipherFunction"
	vm := goja.New()
	if _, err := vm.RunString(objSource); err != nil {
		return "", err
	}
	if _, err := vm.RunString(fnName + "=" + entrySource); err != nil {
		return "", err
	}
	var decipher func(string) string
	if err := vm.ExportTo(vm.Get(fnName), &decipher); err != nil {
		return "", err
	}
	return decipher(sig), nil
}

func findTransformObjectSource(js, objName string) (string, error) {
	re, err := regexp.Compile(
		`(?:var|let|const)\s+` + regexp.QuoteMeta(objName) + `\s*=\s*\{[\s\S]*?\}\s*;`)
	if err != nil {
		return "", err
	}
	src := re.FindString(js)
	if src == "" {
		return "", &SubroutineNotFoundError{Name: objName}
	}
	return src, nil
}
