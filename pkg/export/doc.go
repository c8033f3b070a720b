// Package export implements the kernel's stable wire format (spec.md
// §6.2): the placements JSON shape, and bare {row,col} tile coordinate
// import/export. There is no visual or pixel-format export — spec.md §1
// excludes UI and rendering from the kernel (see DESIGN.md).
package export
