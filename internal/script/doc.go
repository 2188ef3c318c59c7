// Package script lets a host customize what counts as a line break via a
// Lua predicate, layered in front of offsettree.ScanLineStarts rather than
// inside it — the core tree never knows a script was involved.
//
// A script must define a global is_break(byte, index, buffer) function
// returning a boolean:
//
//	-- break on either \n or \r, treating CRLF as one break
//	function is_break(b, index, buffer)
//	    if b == 10 then
//	        return true
//	    end
//	    if b == 13 then
//	        return string.byte(buffer, index + 2) ~= 10
//	    end
//	    return false
//	end
//
// Tokenizer.ScanLineStarts runs the predicate over a buffer and returns
// the same []int64 line-start shape offsettree.ScanLineStarts does, ready
// to feed into offsettree.NewFromOffsets.
package script
