// SPDX-License-Identifier: Unlicense OR MIT

/*
Package slidemenu implements the geometry of a sliding drawer: a behind
panel revealed by dragging a content panel aside.

A Behind controller owns the drawer configuration and answers, for a
given content frame, where the behind panel's edges lie, whether a
touch may start or continue a drag, which scroll offset and visibility
a content position implies, and where the shadow, fade and selector
overlays go.

The controller never reads input queues and never draws on its own.
The host supplies the content frame and the decoded pointer positions
and deltas; the Paint and Layout methods emit Gio operations for hosts
that want them.

All positions are in pixels. A Behind must be measured, either by
Measure or by Layout, before any geometry is computed.
*/
package slidemenu
