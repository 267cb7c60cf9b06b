// SPDX-License-Identifier: EPL-2.0

// Package encoder turns one input file into one S16LE PCM WAV file.
//
// Two backends implement [Encoder]: [FFmpeg] runs an external ffmpeg
// process per file, [Native] decodes in-process with the registered
// format decoders and writes the WAV itself. [New] picks one from the
// configuration.
package encoder
