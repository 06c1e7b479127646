package cycles

// Cycle is one simple directed cycle: a sequence of distinct vertices
// v0, v1, ..., vk-1 where the graph has an edge vi -> v(i+1 mod k). A
// self-loop (v,v) is the one-element cycle []string{v}. The slice starts at
// whichever vertex the producing algorithm happened to start from; callers
// that need a canonical form must rotate it themselves — canonicalization is
// not part of any algorithm's output contract.
type Cycle []string
