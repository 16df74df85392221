package playerjs

import (
	"regexp"
	"strconv"
	"strings"
)

const jsVarStr = `[a-zA-Z_\$][a-zA-Z_0-9\$]*`

var (
	// The decipher entry routine splits the signature, applies a chain
	// of transform-object calls and joins the result. Two shapes occur
	// in the wild: a plain declaration and a function expression.
	entryFuncRegexps = []*regexp.Regexp{
		regexp.MustCompile(
			`function(?:\s+` + jsVarStr + `)?\(a\)\{` +
				`a=a\.split\([^\)]*\);\s*` +
				`((?:(?:a=)?` + jsVarStr + `(?:\.` + jsVarStr + `|\[[^\]]+\])\(a,\d+\);?\s*)+)` +
				`return a\.join\([^\)]*\)` +
				`\}`),
		regexp.MustCompile(
			jsVarStr + `\s*=\s*function\(a\)\{` +
				`a=a\.split\([^\)]*\);\s*` +
				`((?:(?:a=)?` + jsVarStr + `(?:\.` + jsVarStr + `|\[[^\]]+\])\(a,\d+\);?\s*)+)` +
				`return a\.join\([^\)]*\)` +
				`\}`),
	}

	callSiteRegexp = regexp.MustCompile(
		`(?:a=)?(` + jsVarStr + `)(?:\.(` + jsVarStr + `)|\[(?:"([^"]+)"|'([^']+)')\])\(a,(\d+)\)`)

	memberFuncRegexp = regexp.MustCompile(
		`(` + jsVarStr + `)\s*:\s*function\([^)]*\)\s*\{([^}]*)\}`)
)

// ExtractProgram parses a player script into the ordered cipher
// program. Any transform the script references that cannot be resolved
// or classified is a hard error: the upstream format has drifted and a
// partial program would produce wrong URLs.
func ExtractProgram(js string) (Program, error) {
	entryBody := findEntryBody(js)
	if entryBody == "" {
		return nil, &EntryNotFoundError{}
	}

	calls := callSiteRegexp.FindAllStringSubmatch(entryBody, -1)
	if len(calls) == 0 {
		return nil, &EntryNotFoundError{}
	}

	objName := calls[0][1]
	members, ok := findTransformObject(js, objName)
	if !ok {
		return nil, &SubroutineNotFoundError{Name: objName}
	}

	program := make(Program, 0, len(calls))
	for _, call := range calls {
		name := firstNonEmpty(call[2], call[3], call[4])
		body, ok := members[name]
		if !ok {
			return nil, &SubroutineNotFoundError{Name: name}
		}
		arg, err := strconv.Atoi(call[5])
		if err != nil {
			return nil, &UnrecognizedOperationError{Name: name, Body: body}
		}
		kind, ok := classifyTransform(body)
		if !ok {
			return nil, &UnrecognizedOperationError{Name: name, Body: body}
		}
		program = append(program, Operation{Kind: kind, Arg: arg})
	}
	return program, nil
}

func findEntryBody(js string) string {
	for _, re := range entryFuncRegexps {
		if m := re.FindStringSubmatch(js); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// findTransformObject locates the object literal holding the transform
// functions and maps each member name to its body text.
func findTransformObject(js, objName string) (map[string]string, bool) {
	objRegexp, err := regexp.Compile(
		`(?:var|let|const)\s+` + regexp.QuoteMeta(objName) + `\s*=\s*\{([\s\S]*?)\}\s*;`)
	if err != nil {
		return nil, false
	}
	m := objRegexp.FindStringSubmatch(js)
	if len(m) < 2 {
		return nil, false
	}

	members := make(map[string]string)
	for _, fm := range memberFuncRegexp.FindAllStringSubmatch(m[1], -1) {
		members[fm[1]] = fm[2]
	}
	return members, len(members) > 0
}

// classifyTransform maps a transform function body onto the closed
// instruction set by its structural signature.
func classifyTransform(body string) (OpKind, bool) {
	switch {
	case strings.Contains(body, ".reverse()"):
		return OpReverse, true
	case strings.Contains(body, ".splice("):
		return OpSplice, true
	case strings.Contains(body, "%"):
		return OpSwapFirst, true
	}
	return 0, false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
