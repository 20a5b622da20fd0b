/*
Package domain contains the core model of the Verdict compiler.

It defines the fundamental entities of a compiled truth table: output Values
(literal or don't-care), decision-diagram Nodes, and the Result record produced
for each variable order the search explores. This package is kept pure and free
of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Value: a terminal output, either an opaque literal string or the
    don't-care sentinel.
  - Node: one vertex of a decision diagram, either a terminal holding a Value
    or a decision testing one input variable with a high (true) and low
    (false) child.
  - Result: the outcome of compiling one variable order, holding the order
    itself, the reduced tree, and its score.
*/
package domain
