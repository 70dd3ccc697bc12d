/*
The package sentence implements the generation of presentation interface sentences
compliant with the IEC 61162-1 standard. This implementation is solely based on:

	[61162-1] IEC 61162-1:2016
	[M.1371]  Rec. ITU-R M.1371-5

Supported formatters are VDM (AIS VHF data-link message), BBM (AIS binary
broadcast message), and TXT (text transmission). Payloads that do not fit into
a single sentence are split into an ordered sequence of sentences that a
receiver can reassemble.

Restrictions:
Sentence parsing is not implemented yet.
*/
package sentence
