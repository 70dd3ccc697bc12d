/*
The package tagblock implements the generation of encapsulated sentence
messages compliant with the IEC 61162-450 standard: one TAG block carrying the
envelope metadata, prefixed to one IEC 61162-1 like sentence. This
implementation is solely based on:

	[450] IEC 61162-450:2018

Transport of the generated messages (UDP multicast on the lightweight Ethernet
network) is the responsibility of the calling application.

Restrictions:
Message parsing is not implemented yet.
*/
package tagblock
