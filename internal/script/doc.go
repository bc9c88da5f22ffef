// Package script turns a raw script document into the values the sheet
// renderer and the pagination engine consume.
//
// A raw script is a JSON array of entries. Each entry is either a bare
// character id (resolved through a [Catalog]), an object carrying only an id
// (also a catalog reference), an inline character definition, or the special
// "_meta" object holding the script name, author, bootlegger rules and the
// declared night order lists. The object form {"metadata": ..., "characters":
// [...]} produced by upstream normalizers is accepted as well.
//
// Resolution follows these stages:
//
//  1. [Validate]: size, JSON schema and character count checks
//  2. [Parse]: entries become [Character] values and [Metadata]
//  3. [Resolve]: team grouping, jinx discovery, fabled/loric extraction and
//     night order calculation
//
// Everything in this package is a pure function of its inputs. Recoverable
// conditions (unknown team, unknown catalog id, dangling night order id) are
// reported through the *slog.Logger passed by the caller and never abort
// resolution.
package script
