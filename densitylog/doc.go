// Package densitylog is a streaming transform over engine.PrintGrid output:
// it reads a rendered run line by line and emits a per-generation histogram
// of cell states. It is a trivial line-oriented pipe, so it is built
// directly on bufio.Scanner rather than any retrieval-pack dependency — no
// library in the pack offers a better fit for counting whitespace-separated
// integers across a stream of lines.
package densitylog
