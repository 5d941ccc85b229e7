// Package pages models the pages of a document being written: their
// dimensions, margins, content streams, and resources, plus the assembly
// of the finished page tree and catalog.
//
// # Geometry
//
// A [Page] has a [Size] in points and [Margins] insetting the writable
// content area. [Page.Bounds] exposes that area as the absolute box the
// text flow engine works in, and [Page.Cursor] holds the flow state
// anchored to it.
//
// # Resources
//
// Fonts and images used by a page's content are registered under their
// resource names with [Page.UseFont] and [Page.UseImage]. During assembly
// each registered [Resource] contributes its dictionary, deduplicated
// across pages.
//
// # Assembly
//
// [Assemble] writes every page's content stream, resources, and page
// dictionary through a core.Writer, links them into a page tree, and
// installs the document catalog as the file's root.
package pages
