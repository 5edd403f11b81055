package hybrid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnsupported marks a statement outside the deterministic verb set.
// The executor treats it as an ordinary step failure so the agent can
// take the step over.
var ErrUnsupported = errors.New("unsupported statement")

// TargetKind says how a compiled statement addresses an element.
type TargetKind int

const (
	TargetTestID TargetKind = iota
	TargetRole
	TargetText
	TargetCSS
)

// Target is one element address extracted from a locator chain.
type Target struct {
	Kind   TargetKind
	TestID string
	Role   string
	// Name is the accessible-name option of a role locator.
	Name string
	Text string
	CSS  string
}

func (t *Target) String() string {
	switch t.Kind {
	case TargetTestID:
		return fmt.Sprintf("getByTestId(%q)", t.TestID)
	case TargetRole:
		if t.Name != "" {
			return fmt.Sprintf("getByRole(%q, { name: %q })", t.Role, t.Name)
		}
		return fmt.Sprintf("getByRole(%q)", t.Role)
	case TargetText:
		return fmt.Sprintf("getByText(%q)", t.Text)
	default:
		return fmt.Sprintf("locator(%q)", t.CSS)
	}
}

// Verb enumerates everything the statement engine can drive.
type Verb int

const (
	VerbGoto Verb = iota
	VerbGoBack
	VerbWait
	VerbKeyboardPress
	VerbClick
	VerbFill
	VerbPress
	VerbSelect
	VerbExpectVisible
	VerbExpectText
	VerbExpectURL
	VerbWalletApprove
	VerbWalletSign
	VerbWalletConfirmTx
	VerbWalletSwitchNetwork
	VerbWalletReject
	VerbWalletSIWE
)

// Statement is one compiled spec statement.
type Statement struct {
	Verb   Verb
	Target *Target
	// Arg carries the url, text, key, option, network or expected
	// substring, depending on the verb.
	Arg string
	// Ms is the waitForTimeout duration.
	Ms  int
	Src string
}

// SplitStatements cuts a step body into statements on semicolons at
// nesting depth zero. Comments are dropped; string literals are left
// intact. A trailing statement without a semicolon still counts.
func SplitStatements(body string) []string {
	var stmts []string
	var cur strings.Builder
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			stmts = append(stmts, s)
		}
		cur.Reset()
	}
	depth := 0
	i := 0
	for i < len(body) {
		c := body[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			j := skipString(body, i)
			cur.WriteString(body[i:j])
			i = j
			continue
		case c == '/' && i+1 < len(body) && body[i+1] == '/':
			i = skipLineComment(body, i)
			continue
		case c == '/' && i+1 < len(body) && body[i+1] == '*':
			i = skipBlockComment(body, i)
			continue
		case c == '(' || c == '[' || c == '{':
			depth++
		case c == ')' || c == ']' || c == '}':
			depth--
		case c == ';' && depth == 0:
			flush()
			i++
			continue
		}
		cur.WriteByte(c)
		i++
	}
	flush()
	return stmts
}

var (
	headIdentRe = regexp.MustCompile(`^[A-Za-z_$][\w$]*`)
	identRe     = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
	methodRe    = regexp.MustCompile(`^([A-Za-z_$][\w$]*)\s*[.(]`)
	roleNameRe  = regexp.MustCompile(`name\s*:\s*('(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*")`)
)

// Playwright page methods the engine recognizes but does not script.
// Calls against them fail as unsupported so the agent takes over;
// anything outside this set is a typo the runtime itself would reject.
var knownPageMethods = map[string]bool{
	"reload": true, "waitForSelector": true, "waitForURL": true,
	"waitForLoadState": true, "waitForEvent": true, "screenshot": true,
	"hover": true, "dblclick": true, "check": true, "uncheck": true,
	"focus": true, "tap": true, "evaluate": true, "title": true,
	"url": true, "content": true, "mouse": true, "frameLocator": true,
	"getByAltText": true, "getByTitle": true, "setViewportSize": true,
	"addInitScript": true, "route": true, "bringToFront": true,
}

// Globals a browser runtime provides. Statements against them are
// legal JavaScript the engine simply does not script, never a
// reference error.
var knownGlobals = map[string]bool{
	"console": true, "JSON": true, "Math": true, "window": true,
	"document": true, "Promise": true, "Date": true, "Object": true,
	"Number": true, "String": true, "Array": true,
}

var keywordHeads = map[string]bool{
	"const": true, "let": true, "var": true, "if": true, "for": true,
	"while": true, "return": true, "try": true, "function": true,
	"new": true, "throw": true, "switch": true, "do": true,
	"async": true, "typeof": true, "delete": true,
}

var walletVerbs = map[string]Verb{
	"approve":            VerbWalletApprove,
	"sign":               VerbWalletSign,
	"confirmTransaction": VerbWalletConfirmTx,
	"reject":             VerbWalletReject,
	"handleSIWEPopup":    VerbWalletSIWE,
}

// CompileStatement maps one source statement onto the verb set. Errors
// either mirror what a JavaScript runtime would raise for the same
// code (ReferenceError, TypeError) or wrap ErrUnsupported for valid
// code the engine cannot drive deterministically.
func CompileStatement(src string) (Statement, error) {
	s := strings.TrimSpace(src)
	s = strings.TrimSuffix(s, ";")
	s = strings.TrimSpace(s)
	if after, ok := strings.CutPrefix(s, "await"); ok && after != "" && (after[0] == ' ' || after[0] == '\t') {
		s = strings.TrimSpace(after)
	}
	if s == "" {
		return Statement{}, unsupported(src)
	}
	head := headIdentRe.FindString(s)
	rest := strings.TrimLeft(s[len(head):], " \t")
	switch head {
	case "page":
		if strings.HasPrefix(rest, ".") {
			return parsePage(s, src)
		}
	case "wallet":
		if strings.HasPrefix(rest, ".") {
			return parseWallet(s, src)
		}
	case "expect":
		if strings.HasPrefix(rest, "(") {
			return parseExpect(s, src)
		}
	default:
		return classifyUnknown(head, rest, src)
	}
	return Statement{}, unsupported(src)
}

// classifyUnknown synthesizes the error evaluating the statement would
// raise: an unknown identifier being called or dereferenced is a
// ReferenceError, which the executor treats as fatal.
func classifyUnknown(head, rest, src string) (Statement, error) {
	if head == "" || keywordHeads[head] || knownGlobals[head] {
		return Statement{}, unsupported(src)
	}
	if strings.HasPrefix(rest, ".") || strings.HasPrefix(rest, "(") {
		return Statement{}, fmt.Errorf("ReferenceError: %s is not defined", head)
	}
	return Statement{}, unsupported(src)
}

// Locator getters the compiler understands.
var locatorGetters = map[string]bool{
	"getByTestId": true, "getByRole": true, "getByText": true,
	"getByLabel": true, "getByPlaceholder": true, "locator": true,
}

func parsePage(s, src string) (Statement, error) {
	stmt := Statement{Src: src}
	rest := strings.TrimSpace(strings.TrimPrefix(s, "page."))
	m := methodRe.FindStringSubmatch(rest)
	if m == nil {
		return stmt, unsupported(src)
	}
	switch method := m[1]; method {
	case "goto":
		arg, ok := callStringArg(rest, "goto")
		if !ok {
			return stmt, unsupported(src)
		}
		stmt.Verb, stmt.Arg = VerbGoto, arg
		return stmt, nil
	case "goBack":
		if name, _, ok := splitCall(rest); !ok || name != "goBack" {
			return stmt, unsupported(src)
		}
		stmt.Verb = VerbGoBack
		return stmt, nil
	case "waitForTimeout":
		name, args, ok := splitCall(rest)
		if !ok || name != "waitForTimeout" {
			return stmt, unsupported(src)
		}
		ms, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil {
			return stmt, unsupported(src)
		}
		stmt.Verb, stmt.Ms = VerbWait, ms
		return stmt, nil
	case "keyboard":
		arg, ok := callStringArg(strings.TrimPrefix(rest, "keyboard."), "press")
		if !ok {
			return stmt, unsupported(src)
		}
		stmt.Verb, stmt.Arg = VerbKeyboardPress, arg
		return stmt, nil
	default:
		if !locatorGetters[method] {
			return stmt, classifyPageMethod(rest, src)
		}
	}
	target, rem, err := parseLocator(s)
	if err != nil {
		return stmt, unsupported(src)
	}
	rem = strings.TrimSpace(rem)
	if !strings.HasPrefix(rem, ".") {
		return stmt, unsupported(src)
	}
	name, args, ok := splitCall(strings.TrimSpace(rem[1:]))
	if !ok {
		return stmt, unsupported(src)
	}
	stmt.Target = target
	switch name {
	case "click":
		stmt.Verb = VerbClick
	case "fill", "type":
		arg, ok := firstString(args)
		if !ok {
			return stmt, unsupported(src)
		}
		stmt.Verb, stmt.Arg = VerbFill, arg
	case "press":
		arg, ok := firstString(args)
		if !ok {
			return stmt, unsupported(src)
		}
		stmt.Verb, stmt.Arg = VerbPress, arg
	case "selectOption":
		arg, ok := firstString(args)
		if !ok {
			return stmt, unsupported(src)
		}
		stmt.Verb, stmt.Arg = VerbSelect, arg
	default:
		return stmt, unsupported(src)
	}
	return stmt, nil
}

func classifyPageMethod(rest, src string) error {
	m := methodRe.FindStringSubmatch(rest)
	if m == nil {
		return unsupported(src)
	}
	if knownPageMethods[m[1]] {
		return unsupported(src)
	}
	return fmt.Errorf("TypeError: page.%s is not a function", m[1])
}

func parseWallet(s, src string) (Statement, error) {
	stmt := Statement{Src: src}
	name, args, ok := splitCall(strings.TrimPrefix(s, "wallet."))
	if !ok {
		return stmt, unsupported(src)
	}
	if name == "switchNetwork" {
		arg, ok := firstString(args)
		if !ok {
			return stmt, unsupported(src)
		}
		stmt.Verb, stmt.Arg = VerbWalletSwitchNetwork, arg
		return stmt, nil
	}
	verb, known := walletVerbs[name]
	if !known {
		return stmt, fmt.Errorf("TypeError: wallet.%s is not a function", name)
	}
	stmt.Verb = verb
	return stmt, nil
}

func parseExpect(s, src string) (Statement, error) {
	stmt := Statement{Src: src}
	open := strings.IndexByte(s, '(')
	closing := matchingParen(s, open)
	if closing < 0 {
		return stmt, unsupported(src)
	}
	subject := strings.TrimSpace(s[open+1 : closing])
	rem := strings.TrimSpace(s[closing+1:])
	if !strings.HasPrefix(rem, ".") {
		return stmt, unsupported(src)
	}
	matcher, args, ok := splitCall(strings.TrimSpace(rem[1:]))
	if !ok {
		return stmt, unsupported(src)
	}

	compact := strings.ReplaceAll(subject, " ", "")
	if compact == "page.url()" || compact == "page" {
		if matcher != "toContain" && matcher != "toHaveURL" {
			return stmt, unsupported(src)
		}
		arg, ok := firstString(args)
		if !ok {
			return stmt, unsupported(src)
		}
		stmt.Verb, stmt.Arg = VerbExpectURL, arg
		return stmt, nil
	}

	target, rest, err := parseLocator(subject)
	if err != nil || strings.TrimSpace(rest) != "" {
		return stmt, unsupported(src)
	}
	stmt.Target = target
	switch matcher {
	case "toBeVisible":
		stmt.Verb = VerbExpectVisible
	case "toContainText", "toContain", "toHaveText":
		arg, ok := firstString(args)
		if !ok {
			return stmt, unsupported(src)
		}
		stmt.Verb, stmt.Arg = VerbExpectText, arg
	default:
		return stmt, unsupported(src)
	}
	return stmt, nil
}

// parseLocator reads the locator expression heading s and returns the
// compiled target plus the remainder of the chain.
func parseLocator(s string) (*Target, string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), "page.")
	if !ok {
		return nil, "", unsupported(s)
	}
	open := strings.IndexByte(rest, '(')
	if open <= 0 {
		return nil, "", unsupported(s)
	}
	getter := strings.TrimSpace(rest[:open])
	closing := matchingParen(rest, open)
	if closing < 0 {
		return nil, "", unsupported(s)
	}
	args := splitTopLevel(rest[open+1 : closing])
	rem := rest[closing+1:]
	if len(args) == 0 {
		return nil, "", unsupported(s)
	}
	first, ok := jsUnquote(args[0])
	if !ok {
		return nil, "", unsupported(s)
	}
	t := &Target{}
	switch getter {
	case "getByTestId":
		t.Kind, t.TestID = TargetTestID, first
	case "getByRole":
		t.Kind, t.Role = TargetRole, first
		if len(args) > 1 {
			if m := roleNameRe.FindStringSubmatch(args[1]); m != nil {
				if name, ok := jsUnquote(m[1]); ok {
					t.Name = name
				}
			}
		}
	case "getByText", "getByLabel":
		t.Kind, t.Text = TargetText, first
	case "getByPlaceholder":
		t.Kind, t.CSS = TargetCSS, fmt.Sprintf(`[placeholder=%q]`, first)
	case "locator":
		t.Kind, t.CSS = TargetCSS, first
	default:
		return nil, "", unsupported(s)
	}
	return t, rem, nil
}

// splitCall parses `name(args)` where the call closes the expression,
// returning the raw argument text.
func splitCall(s string) (name, args string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 {
		return "", "", false
	}
	name = strings.TrimSpace(s[:open])
	if !identRe.MatchString(name) {
		return "", "", false
	}
	closing := matchingParen(s, open)
	if closing < 0 || strings.TrimSpace(s[closing+1:]) != "" {
		return "", "", false
	}
	return name, strings.TrimSpace(s[open+1 : closing]), true
}

func callStringArg(s, name string) (string, bool) {
	got, args, ok := splitCall(s)
	if !ok || got != name {
		return "", false
	}
	return firstString(args)
}

func firstString(args string) (string, bool) {
	parts := splitTopLevel(args)
	if len(parts) == 0 {
		return "", false
	}
	return jsUnquote(parts[0])
}

func unsupported(src string) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, firstLine(src, 80))
}
