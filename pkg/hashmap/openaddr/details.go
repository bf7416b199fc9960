package openaddr

/*
	This hash map implementation uses a closed hashing (open addressing) technique with
	quadratic probing for resolving any hash collisions. Table sizes are always prime and
	the load factor is kept below one half, which together guarantee that the first
	(capacity+1)/2 positions of any probe sequence are distinct, so an empty slot is
	always reachable. More information about the technique can be found below:
	01) https://en.wikipedia.org/wiki/Quadratic_probing
	02) https://www.cs.princeton.edu/~rs/AlgsDS07/10Hashing.pdf
	The basic principal is:
	-----------------------
	1) Calculate the hash value and initial index (hash mod capacity) of the key
	2) Probe the positions initial+0, initial+1, initial+4, ..., initial+i*i (mod capacity)
	3) Removed entries leave a tombstone behind so later probe sequences are not cut short
	4) An insert takes the first tombstone it passed, or the empty slot that ended the probe
	5) Before every insert the table is doubled (to the next prime) if it is half full
*/
