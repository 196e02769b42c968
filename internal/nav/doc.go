// Package nav implements the sidebar page navigator.
//
// Allowed here:
// - row building, section headers, active marking, disclosure and overflow state
// - translating terminal input into host intents (page change, collapse, scroll suppression)
//
// Not allowed here:
// - URL construction, routing, or persistence (the host owns those)
package nav
