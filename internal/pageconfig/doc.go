// Package pageconfig assembles the configuration payload the browser-side
// application boots from.
//
// A [PageConfig] is built fresh for every request by layering independent
// sources in a fixed precedence order: static and runtime seed values,
// the computed preferred path, resolved MathJax settings, the enumerated
// application traits (with synthesized full-URL variants for URL-valued
// traits), extension-contributed fragments discovered on disk, and finally an
// optional caller-supplied hook. Later layers win: nested mappings are merged
// key-by-key, scalars and arrays are replaced.
package pageconfig
