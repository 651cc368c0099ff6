/*
Package ostree implements an order-statistics binary search tree.

Order-Statistics Trees

An order-statistics tree is a binary search tree where every node additionally
records the size of the subtree rooted at it. With this augmentation the tree
answers "which is the k-th smallest key?" and "how many keys are smaller than
x?" in time proportional to its height, without flattening the tree into a
sorted sequence first.

	         4 (5)
	       /     \
	    2 (3)    5 (1)
	   /    \
	1 (1)   3 (1)

The number in parentheses is the subtree size. Selecting the key with
index 2 starts at the root: the left subtree holds 3 keys, so index 2 lies
within it; at node 2 the left subtree holds 1 key, so index 2 - 1 - 1 = 0 lies
in the right subtree, which is node 3.

Ordinary insertions and deletions do not rebalance the tree. Clients which
have done many mutations may call Rebalance, which flattens the tree into
its sorted key sequence and rebuilds it from medians. The result has, for
every node, left and right subtrees differing in height by at most one.
FromSorted uses the same construction for bulk loading.

Keys are scalar values with a total order: integers, floats (without NaN)
and strings. A tree never stores a key twice.

A Tree is not safe for concurrent use. Clients sharing a tree between
goroutines must synchronize access themselves.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ostree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
