// Package loader reads undirected edge lists into a core.Graph.
//
// Input format
//
//	A text stream of integer tokens separated by any whitespace, consumed two
//	at a time as (u, v) pairs. Line breaks carry no meaning. Labels may be
//	negative and need not be contiguous.
//
// Construction
//
//	For each pair, the edge is skipped when EdgeExist(u, v) already holds and
//	inserted with AddEdge otherwise. Because AddEdge mirrors every edge, both
//	a repeated "u v" and a later "v u" are suppressed. The declared vertex
//	count equals the number of distinct labels.
//
// Errors
//
//   - ErrFileAccess  the file cannot be opened or the stream fails mid-read
//     (the underlying error stays reachable through errors.Is/As).
//   - ErrParse       a token is not an integer, or the last token has no partner.
//
// Either error aborts construction; no partial graph is returned.
package loader
