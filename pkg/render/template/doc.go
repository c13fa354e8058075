// Package template defines the template engine seam used by page-producing
// backends, with a pongo2 implementation in the gotemplate subpackage.
package template
