// Package buddy supplies a binary buddy allocator for physical pages,
// with a limited scope:
//
//  * Types and Functions exported by this package are not thread safe.
//  * Arena geometry is fixed at construction, pages are never added
//    or removed afterwards.
//  * Blocks are sized in ranks, a rank-r block spans 2^(r-1) pages,
//    there is no partial or non-power-of-two allocation.
//  * The arena only tracks page ownership, it never reads or writes
//    the memory it manages. Virtual-memory mapping and page-table
//    manipulation belong to the caller.
//
// Arena is a contiguous run of equal sized pages, partitioned at any
// instant into allocated blocks and free blocks. Free blocks of each
// rank are held on a doubly-linked list, allocation splits a larger
// block down to the requested rank and free merges a block with its
// buddy as far as buddies remain free. A per-page metadata table
// records, in constant time, whether a page heads an allocated or a
// free block and at what rank.
package buddy
