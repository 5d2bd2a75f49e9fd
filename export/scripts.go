package export

import (
	"encoding/json"
	"fmt"
)

// readyExpr is truthy once the viewer has mounted slides and hidden its
// loading indicator.
const readyExpr = `(() => {
	if (document.querySelectorAll('.slide').length === 0) return false;
	const loading = document.getElementById('loading-indicator');
	return !loading || loading.hidden || getComputedStyle(loading).display === 'none';
})()`

const countExpr = `document.querySelectorAll('.slide').length`

// exportCSS lays slides out one per page and hides viewer chrome.
const exportCSS = `
.navigation, #loading-indicator { display: none !important; }
html, body { margin: 0 !important; padding: 0 !important; background: white; }
.slide.export-hidden { display: none !important; }
.slide.export-visible {
	display: block !important;
	opacity: 1 !important;
	visibility: visible !important;
	position: relative !important;
	transform: none !important;
	width: 100vw !important;
	height: 100vh !important;
	box-sizing: border-box !important;
	overflow: hidden !important;
	break-inside: avoid !important;
	break-after: page !important;
}
.slide.export-last { break-after: auto !important; }
@page { margin: 0; }
`

// prepareScript injects exportCSS once.
func prepareScript() string {
	css, _ := json.Marshal(exportCSS)
	return fmt.Sprintf(`(() => {
	if (!document.getElementById('slidedeck-export')) {
		const style = document.createElement('style');
		style.id = 'slidedeck-export';
		style.textContent = %s;
		document.head.appendChild(style);
	}
	document.querySelectorAll('.navigation').forEach(n => { n.style.display = 'none'; });
	return true;
})()`, css)
}

// showScript makes exactly the slides at indices visible.
func showScript(indices []int) string {
	list, _ := json.Marshal(indices)
	return fmt.Sprintf(`((want) => {
	const keep = new Set(want);
	let last = null;
	document.querySelectorAll('.slide').forEach((s, i) => {
		const on = keep.has(i);
		s.classList.toggle('export-visible', on);
		s.classList.toggle('export-hidden', !on);
		s.classList.toggle('active', on);
		s.classList.remove('export-last');
		if (on) last = s;
	});
	if (last) last.classList.add('export-last');
	return true;
})(%s)`, list)
}
