// Package pipeline turns Markdown into the HTML that the PDF renderer prints.
//
// Stages:
//   - Preprocess: line endings, page-break comments and ==highlight== spans
//     become private-use placeholders, blank lines are compressed
//   - Renderer: Goldmark with GFM, footnotes, definition lists and chroma
//     class-based highlighting; placeholders are swapped back afterwards
//   - ResolveLocalPaths: relative image and link targets become file:// URLs
//   - MergeSections: several rendered documents joined under section headers
//   - BuildDocument: the HTML5 shell with the theme stylesheet inlined
//
// Page layout and printing belong to the root md2pdf package.
package pipeline
