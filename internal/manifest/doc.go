// Package manifest reads the scripts section of a project's package.json.
//
// Only the working directory is consulted: [Load] never walks up to parent
// directories, so running rpc in a sub-folder of a project does not pick up
// the parent's scripts by accident.
//
// Scripts keep their declaration order, which is the order they are shown
// in listings and in the interactive selector. The file is parsed with
// gjson, which iterates objects in document order.
//
// # Errors
//
//   - [ErrNotFound]: there is no package.json in the directory
//   - [ErrInvalid]: the file is not valid JSON, or has no usable scripts
//
// The two are distinct so callers can print different guidance.
//
// [FindUp] is a separate bootstrap helper that does walk up parent
// directories. It exists to locate rpc's own package metadata and must not
// be used for user scripts.
package manifest
