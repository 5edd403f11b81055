package sandbox

// snapshotScript walks the visible DOM and produces a compact textual
// outline of interactive and labelled elements. Each interactive element
// gets an opaque ref (e1, e2, ...) registered on window.__agentRefs so a
// follow-up action can address it without a selector. Refs are valid
// until the next snapshot replaces the registry.
const snapshotScript = `(() => {
  const refs = {};
  let seq = 0;
  const lines = [];

  const visible = (el) => {
    const r = el.getBoundingClientRect();
    if (r.width === 0 && r.height === 0) return false;
    const s = window.getComputedStyle(el);
    return s.visibility !== 'hidden' && s.display !== 'none';
  };

  const roleOf = (el) => {
    const explicit = el.getAttribute('role');
    if (explicit) return explicit;
    const tag = el.tagName.toLowerCase();
    if (tag === 'a') return el.hasAttribute('href') ? 'link' : 'text';
    if (tag === 'button') return 'button';
    if (tag === 'select') return 'combobox';
    if (tag === 'textarea') return 'textbox';
    if (tag === 'input') {
      const t = (el.type || 'text').toLowerCase();
      if (t === 'button' || t === 'submit' || t === 'reset') return 'button';
      if (t === 'checkbox') return 'checkbox';
      if (t === 'radio') return 'radio';
      return 'textbox';
    }
    if (/^h[1-6]$/.test(tag)) return 'heading';
    if (tag === 'img') return 'img';
    return null;
  };

  const labelOf = (el) => {
    const aria = el.getAttribute('aria-label');
    if (aria) return aria.trim();
    if (el.labels && el.labels.length) return el.labels[0].textContent.trim();
    const text = (el.textContent || '').replace(/\s+/g, ' ').trim();
    if (text) return text.length > 80 ? text.slice(0, 77) + '...' : text;
    return el.getAttribute('placeholder') || el.getAttribute('alt') ||
           el.getAttribute('title') || el.getAttribute('name') || '';
  };

  const interactive = (el, role) =>
    role === 'link' || role === 'button' || role === 'textbox' ||
    role === 'combobox' || role === 'checkbox' || role === 'radio' ||
    el.onclick != null || el.getAttribute('data-testid') != null;

  const walk = (el, depth) => {
    if (el.nodeType !== 1 || !visible(el)) return;
    const role = roleOf(el);
    if (role && role !== 'text') {
      let line = role + ' "' + labelOf(el) + '"';
      if (interactive(el, role)) {
        seq += 1;
        const ref = 'e' + seq;
        refs[ref] = el;
        line += ' [ref=' + ref + ']';
      }
      const testid = el.getAttribute('data-testid');
      if (testid) line += ' [testid=' + testid + ']';
      if (role === 'textbox' || role === 'combobox') {
        line += ' value="' + (el.value || '') + '"';
      }
      if (role === 'checkbox' || role === 'radio') {
        line += el.checked ? ' [checked]' : '';
      }
      lines.push('  '.repeat(depth) + '- ' + line);
      if (role === 'button' || role === 'link') return;
      depth += 1;
    }
    for (const child of el.children) walk(child, depth);
  };

  walk(document.body, 0);
  window.__agentRefs = refs;
  if (lines.length === 0) return '(empty page)';
  return lines.join('\n');
})()`

// refLookupExpr yields a JS expression resolving a previously issued
// snapshot ref to its element, or undefined when stale.
func refLookupExpr(ref string) string {
	return "(window.__agentRefs || {})[" + jsString(ref) + "]"
}

// selectorLookupExpr yields a JS expression resolving a CSS selector.
func selectorLookupExpr(selector string) string {
	return "document.querySelector(" + jsString(selector) + ")"
}
