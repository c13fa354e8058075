// Package schema defines the wire model of server supplied UI documents:
// payloads, elements, their mixed string/element children and the typed
// property accessors renderers use to read untrusted props.
package schema
