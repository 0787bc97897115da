package catalog

// effectTable lists every ordinary effect in display order. ID 0 is the
// static-color entry and never reaches the wire as an effect frame.
var effectTable = []Entry{
	{Key: "none", Label: "Static Color", ID: 0, Kind: KindStatic},
	{Key: "magic_forward", Label: "Magic Forward", ID: 1, Kind: KindEffect},
	{Key: "magic_back", Label: "Magic Back", ID: 2, Kind: KindEffect},
	{Key: "jump_7_color", Label: "Jump: 7-Color", ID: 193, Kind: KindEffect},
	{Key: "jump_rgb", Label: "Jump: RGB", ID: 194, Kind: KindEffect},
	{Key: "jump_ycp", Label: "Jump: YCP", ID: 195, Kind: KindEffect},
	{Key: "strobe_7_color", Label: "Strobe: 7-Color", ID: 196, Kind: KindEffect},
	{Key: "strobe_rgb", Label: "Strobe: RGB", ID: 197, Kind: KindEffect},
	{Key: "strobe_ycp", Label: "Strobe: YCP", ID: 198, Kind: KindEffect},
	{Key: "gradual_7_color", Label: "Gradual: Rainbow", ID: 199, Kind: KindEffect},
	{Key: "gradual_red_yellow", Label: "Gradual: Red-Yellow", ID: 200, Kind: KindEffect},
	{Key: "gradual_red_purple", Label: "Gradual: Red-Purple", ID: 201, Kind: KindEffect},
	{Key: "gradual_green_cyan", Label: "Gradual: Green-Cyan", ID: 202, Kind: KindEffect},
	{Key: "gradual_green_yellow", Label: "Gradual: Green-Yellow", ID: 203, Kind: KindEffect},
	{Key: "gradual_blue_purple", Label: "Gradual: Blue-Purple", ID: 204, Kind: KindEffect},
	{Key: "marquee_red", Label: "Marquee: Red", ID: 205, Kind: KindEffect},
	{Key: "marquee_green", Label: "Marquee: Green", ID: 206, Kind: KindEffect},
	{Key: "marquee_blue", Label: "Marquee: Blue", ID: 207, Kind: KindEffect},
	{Key: "marquee_yellow", Label: "Marquee: Yellow", ID: 208, Kind: KindEffect},
	{Key: "marquee_cyan", Label: "Marquee: Cyan", ID: 209, Kind: KindEffect},
	{Key: "marquee_purple", Label: "Marquee: Purple", ID: 210, Kind: KindEffect},
	{Key: "marquee_white", Label: "Marquee: White", ID: 211, Kind: KindEffect},
	{Key: "race_7_color", Label: "Race: 7-Color", ID: 77, Kind: KindEffect},
	{Key: "race_7_color_back", Label: "Race: 7-Color Back", ID: 78, Kind: KindEffect},
	{Key: "race_rgb", Label: "Race: RGB", ID: 79, Kind: KindEffect},
	{Key: "race_rgb_back", Label: "Race: RGB Back", ID: 80, Kind: KindEffect},
	{Key: "race_ycp", Label: "Race: YCP", ID: 81, Kind: KindEffect},
	{Key: "race_ycp_back", Label: "Race: YCP Back", ID: 82, Kind: KindEffect},
	{Key: "wave_7_color", Label: "Wave: 7-Color", ID: 83, Kind: KindEffect},
	{Key: "wave_7_color_back", Label: "Wave: 7-Color Back", ID: 84, Kind: KindEffect},
	{Key: "wave_rgb", Label: "Wave: RGB", ID: 85, Kind: KindEffect},
	{Key: "wave_rgb_back", Label: "Wave: RGB Back", ID: 86, Kind: KindEffect},
	{Key: "wave_ycp", Label: "Wave: YCP", ID: 87, Kind: KindEffect},
	{Key: "wave_ycp_back", Label: "Wave: YCP Back", ID: 88, Kind: KindEffect},
	{Key: "flush_7_color", Label: "Flush: 7-Color", ID: 181, Kind: KindEffect},
	{Key: "flush_7_color_back", Label: "Flush: 7-Color Back", ID: 182, Kind: KindEffect},
	{Key: "flush_rgb", Label: "Flush: RGB", ID: 183, Kind: KindEffect},
	{Key: "flush_rgb_back", Label: "Flush: RGB Back", ID: 184, Kind: KindEffect},
	{Key: "flush_ycp", Label: "Flush: YCP", ID: 185, Kind: KindEffect},
	{Key: "flush_ycp_back", Label: "Flush: YCP Back", ID: 186, Kind: KindEffect},
	{Key: "flush_7_color_close", Label: "Flush: 7-Color Close", ID: 187, Kind: KindEffect},
	{Key: "flush_7_color_open", Label: "Flush: 7-Color Open", ID: 188, Kind: KindEffect},
	{Key: "flush_rgb_close", Label: "Flush: RGB Close", ID: 189, Kind: KindEffect},
	{Key: "flush_rgb_open", Label: "Flush: RGB Open", ID: 190, Kind: KindEffect},
	{Key: "flush_ycp_close", Label: "Flush: YCP Close", ID: 191, Kind: KindEffect},
	{Key: "flush_ycp_open", Label: "Flush: YCP Open", ID: 192, Kind: KindEffect},
	{Key: "energy_7_color", Label: "Energy: 7-Color", ID: 212, Kind: KindEffect},
	{Key: "curtain_7_color_close", Label: "Curtain: 7-Color Close", ID: 57, Kind: KindEffect},
	{Key: "curtain_7_color_open", Label: "Curtain: 7-Color Open", ID: 58, Kind: KindEffect},
	{Key: "curtain_rgb_close", Label: "Curtain: RGB Close", ID: 59, Kind: KindEffect},
	{Key: "curtain_rgb_open", Label: "Curtain: RGB Open", ID: 60, Kind: KindEffect},
	{Key: "curtain_ycp_close", Label: "Curtain: YCP Close", ID: 61, Kind: KindEffect},
	{Key: "curtain_ycp_open", Label: "Curtain: YCP Open", ID: 62, Kind: KindEffect},
	{Key: "curtain_red_close", Label: "Curtain: Red Close", ID: 63, Kind: KindEffect},
	{Key: "curtain_red_open", Label: "Curtain: Red Open", ID: 64, Kind: KindEffect},
	{Key: "curtain_green_close", Label: "Curtain: Green Close", ID: 65, Kind: KindEffect},
	{Key: "curtain_green_open", Label: "Curtain: Green Open", ID: 66, Kind: KindEffect},
	{Key: "curtain_blue_close", Label: "Curtain: Blue Close", ID: 67, Kind: KindEffect},
	{Key: "curtain_blue_open", Label: "Curtain: Blue Open", ID: 68, Kind: KindEffect},
	{Key: "curtain_yellow_close", Label: "Curtain: Yellow Close", ID: 69, Kind: KindEffect},
	{Key: "curtain_yellow_open", Label: "Curtain: Yellow Open", ID: 70, Kind: KindEffect},
	{Key: "curtain_cyan_close", Label: "Curtain: Cyan Close", ID: 71, Kind: KindEffect},
	{Key: "curtain_cyan_open", Label: "Curtain: Cyan Open", ID: 72, Kind: KindEffect},
	{Key: "curtain_purple_close", Label: "Curtain: Purple Close", ID: 73, Kind: KindEffect},
	{Key: "curtain_purple_open", Label: "Curtain: Purple Open", ID: 74, Kind: KindEffect},
	{Key: "curtain_white_close", Label: "Curtain: White Close", ID: 75, Kind: KindEffect},
	{Key: "curtain_white_open", Label: "Curtain: White Open", ID: 76, Kind: KindEffect},
	{Key: "trans_7_color", Label: "Trans: 7-Color", ID: 3, Kind: KindEffect},
	{Key: "trans_7_color_back", Label: "Trans: 7-Color Back", ID: 4, Kind: KindEffect},
	{Key: "trans_rgb", Label: "Trans: RGB", ID: 5, Kind: KindEffect},
	{Key: "trans_rgb_back", Label: "Trans: RGB Back", ID: 6, Kind: KindEffect},
	{Key: "trans_ycp", Label: "Trans: YCP", ID: 7, Kind: KindEffect},
	{Key: "trans_ycp_back", Label: "Trans: YCP Back", ID: 8, Kind: KindEffect},
	{Key: "trans_6_to_red", Label: "Trans: 6 to Red", ID: 9, Kind: KindEffect},
	{Key: "trans_6_to_red_back", Label: "Trans: 6 to Red Back", ID: 10, Kind: KindEffect},
	{Key: "trans_6_to_green", Label: "Trans: 6 to Green", ID: 11, Kind: KindEffect},
	{Key: "trans_6_to_green_back", Label: "Trans: 6 to Green Back", ID: 12, Kind: KindEffect},
	{Key: "trans_6_to_blue", Label: "Trans: 6 to Blue", ID: 13, Kind: KindEffect},
	{Key: "trans_6_to_blue_back", Label: "Trans: 6 to Blue Back", ID: 14, Kind: KindEffect},
	{Key: "trans_6_to_cyan", Label: "Trans: 6 to Cyan", ID: 15, Kind: KindEffect},
	{Key: "trans_6_to_cyan_back", Label: "Trans: 6 to Cyan Back", ID: 16, Kind: KindEffect},
	{Key: "trans_6_to_yellow", Label: "Trans: 6 to Yellow", ID: 17, Kind: KindEffect},
	{Key: "trans_6_to_yellow_back", Label: "Trans: 6 to Yellow Back", ID: 18, Kind: KindEffect},
	{Key: "trans_6_to_purple", Label: "Trans: 6 to Purple", ID: 19, Kind: KindEffect},
	{Key: "trans_6_to_purple_back", Label: "Trans: 6 to Purple Back", ID: 20, Kind: KindEffect},
	{Key: "trans_6_to_white", Label: "Trans: 6 to White", ID: 21, Kind: KindEffect},
	{Key: "trans_6_to_white_back", Label: "Trans: 6 to White Back", ID: 22, Kind: KindEffect},
	{Key: "water_7_color", Label: "Water: 7-Color", ID: 39, Kind: KindEffect},
	{Key: "water_7_color_back", Label: "Water: 7-Color Back", ID: 40, Kind: KindEffect},
	{Key: "water_rgb", Label: "Water: RGB", ID: 41, Kind: KindEffect},
	{Key: "water_rgb_back", Label: "Water: RGB Back", ID: 42, Kind: KindEffect},
	{Key: "water_ycp", Label: "Water: YCP", ID: 43, Kind: KindEffect},
	{Key: "water_ycp_back", Label: "Water: YCP Back", ID: 44, Kind: KindEffect},
	{Key: "water_rg", Label: "Water: RG", ID: 45, Kind: KindEffect},
	{Key: "water_rg_back", Label: "Water: RG Back", ID: 46, Kind: KindEffect},
	{Key: "water_gb", Label: "Water: GB", ID: 47, Kind: KindEffect},
	{Key: "water_gb_back", Label: "Water: GB Back", ID: 48, Kind: KindEffect},
	{Key: "water_yb", Label: "Water: YB", ID: 49, Kind: KindEffect},
	{Key: "water_yb_back", Label: "Water: YB Back", ID: 50, Kind: KindEffect},
	{Key: "water_yc", Label: "Water: YC", ID: 51, Kind: KindEffect},
	{Key: "water_yc_back", Label: "Water: YC Back", ID: 52, Kind: KindEffect},
	{Key: "water_cp", Label: "Water: CP", ID: 53, Kind: KindEffect},
	{Key: "water_cp_back", Label: "Water: CP Back", ID: 54, Kind: KindEffect},
	{Key: "water_white", Label: "Water: White", ID: 55, Kind: KindEffect},
	{Key: "water_white_back", Label: "Water: White Back", ID: 56, Kind: KindEffect},
	{Key: "flow_wr_w", Label: "Flow: W-R-W", ID: 143, Kind: KindEffect},
	{Key: "flow_wr_w_back", Label: "Flow: W-R-W Back", ID: 144, Kind: KindEffect},
	{Key: "flow_wg_w", Label: "Flow: W-G-W", ID: 145, Kind: KindEffect},
	{Key: "flow_wg_w_back", Label: "Flow: W-G-W Back", ID: 146, Kind: KindEffect},
	{Key: "flow_wb_w", Label: "Flow: W-B-W", ID: 147, Kind: KindEffect},
	{Key: "flow_wb_w_back", Label: "Flow: W-B-W Back", ID: 148, Kind: KindEffect},
	{Key: "flow_wy_w", Label: "Flow: W-Y-W", ID: 149, Kind: KindEffect},
	{Key: "flow_wy_w_back", Label: "Flow: W-Y-W Back", ID: 150, Kind: KindEffect},
	{Key: "flow_wc_w", Label: "Flow: W-C-W", ID: 151, Kind: KindEffect},
	{Key: "flow_wc_w_back", Label: "Flow: W-C-W Back", ID: 152, Kind: KindEffect},
	{Key: "flow_wp_w", Label: "Flow: W-P-W", ID: 153, Kind: KindEffect},
	{Key: "flow_wp_w_back", Label: "Flow: W-P-W Back", ID: 154, Kind: KindEffect},
	{Key: "flow_rw_r", Label: "Flow: R-W-R", ID: 155, Kind: KindEffect},
	{Key: "flow_rw_r_back", Label: "Flow: R-W-R Back", ID: 156, Kind: KindEffect},
	{Key: "flow_gw_g", Label: "Flow: G-W-G", ID: 157, Kind: KindEffect},
	{Key: "flow_gw_g_back", Label: "Flow: G-W-G Back", ID: 158, Kind: KindEffect},
	{Key: "flow_bw_b", Label: "Flow: B-W-B", ID: 159, Kind: KindEffect},
	{Key: "flow_bw_b_back", Label: "Flow: B-W-B Back", ID: 160, Kind: KindEffect},
	{Key: "flow_yw_y", Label: "Flow: Y-W-Y", ID: 161, Kind: KindEffect},
	{Key: "flow_yw_y_back", Label: "Flow: Y-W-Y Back", ID: 162, Kind: KindEffect},
	{Key: "flow_cw_c", Label: "Flow: C-W-C", ID: 163, Kind: KindEffect},
	{Key: "flow_cw_c_back", Label: "Flow: C-W-C Back", ID: 164, Kind: KindEffect},
	{Key: "flow_pw_p", Label: "Flow: P-W-P", ID: 165, Kind: KindEffect},
	{Key: "flow_pw_p_back", Label: "Flow: P-W-P Back", ID: 166, Kind: KindEffect},
	{Key: "tail_7_color", Label: "Tail: 7-Color", ID: 23, Kind: KindEffect},
	{Key: "tail_7_color_back", Label: "Tail: 7-Color Back", ID: 24, Kind: KindEffect},
	{Key: "tail_red", Label: "Tail: Red", ID: 25, Kind: KindEffect},
	{Key: "tail_red_back", Label: "Tail: Red Back", ID: 26, Kind: KindEffect},
	{Key: "tail_green", Label: "Tail: Green", ID: 27, Kind: KindEffect},
	{Key: "tail_green_back", Label: "Tail: Green Back", ID: 28, Kind: KindEffect},
	{Key: "tail_blue", Label: "Tail: Blue", ID: 29, Kind: KindEffect},
	{Key: "tail_blue_back", Label: "Tail: Blue Back", ID: 30, Kind: KindEffect},
	{Key: "tail_yellow", Label: "Tail: Yellow", ID: 31, Kind: KindEffect},
	{Key: "tail_yellow_back", Label: "Tail: Yellow Back", ID: 32, Kind: KindEffect},
	{Key: "tail_cyan", Label: "Tail: Cyan", ID: 33, Kind: KindEffect},
	{Key: "tail_cyan_back", Label: "Tail: Cyan Back", ID: 34, Kind: KindEffect},
	{Key: "tail_purple", Label: "Tail: Purple", ID: 35, Kind: KindEffect},
	{Key: "tail_purple_back", Label: "Tail: Purple Back", ID: 36, Kind: KindEffect},
	{Key: "tail_white", Label: "Tail: White", ID: 37, Kind: KindEffect},
	{Key: "tail_white_back", Label: "Tail: White Back", ID: 38, Kind: KindEffect},
	{Key: "running_red", Label: "Running: Red", ID: 89, Kind: KindEffect},
	{Key: "running_red_2", Label: "Running: Red 2", ID: 109, Kind: KindEffect},
	{Key: "running_red_3", Label: "Running: Red 3", ID: 111, Kind: KindEffect},
	{Key: "running_red_4", Label: "Running: Red 4", ID: 113, Kind: KindEffect},
	{Key: "running_red_5", Label: "Running: Red 5", ID: 115, Kind: KindEffect},
	{Key: "running_green", Label: "Running: Green", ID: 91, Kind: KindEffect},
	{Key: "running_green_2", Label: "Running: Green 2", ID: 117, Kind: KindEffect},
	{Key: "running_green_3", Label: "Running: Green 3", ID: 119, Kind: KindEffect},
	{Key: "running_green_4", Label: "Running: Green 4", ID: 121, Kind: KindEffect},
	{Key: "running_green_5", Label: "Running: Green 5", ID: 123, Kind: KindEffect},
	{Key: "running_blue", Label: "Running: Blue", ID: 93, Kind: KindEffect},
	{Key: "running_blue_2", Label: "Running: Blue 2", ID: 125, Kind: KindEffect},
	{Key: "running_blue_3", Label: "Running: Blue 3", ID: 127, Kind: KindEffect},
	{Key: "running_blue_4", Label: "Running: Blue 4", ID: 129, Kind: KindEffect},
	{Key: "running_blue_5", Label: "Running: Blue 5", ID: 131, Kind: KindEffect},
	{Key: "running_yellow", Label: "Running: Yellow", ID: 95, Kind: KindEffect},
	{Key: "running_yellow_2", Label: "Running: Yellow 2", ID: 133, Kind: KindEffect},
	{Key: "running_yellow_3", Label: "Running: Yellow 3", ID: 135, Kind: KindEffect},
	{Key: "running_yellow_4", Label: "Running: Yellow 4", ID: 137, Kind: KindEffect},
	{Key: "running_yellow_5", Label: "Running: Yellow 5", ID: 139, Kind: KindEffect},
	{Key: "running_cyan", Label: "Running: Cyan", ID: 97, Kind: KindEffect},
	{Key: "running_cyan_2", Label: "Running: Cyan 2", ID: 141, Kind: KindEffect},
	{Key: "running_cyan_3", Label: "Running: Cyan 3", ID: 167, Kind: KindEffect},
	{Key: "running_cyan_4", Label: "Running: Cyan 4", ID: 169, Kind: KindEffect},
	{Key: "running_cyan_5", Label: "Running: Cyan 5", ID: 171, Kind: KindEffect},
	{Key: "running_purple", Label: "Running: Purple", ID: 99, Kind: KindEffect},
	{Key: "running_purple_2", Label: "Running: Purple 2", ID: 173, Kind: KindEffect},
	{Key: "running_purple_3", Label: "Running: Purple 3", ID: 175, Kind: KindEffect},
	{Key: "running_purple_4", Label: "Running: Purple 4", ID: 177, Kind: KindEffect},
	{Key: "running_purple_5", Label: "Running: Purple 5", ID: 179, Kind: KindEffect},
	{Key: "running_white", Label: "Running: White", ID: 101, Kind: KindEffect},
	{Key: "running_7_color", Label: "Running: 7-Color", ID: 103, Kind: KindEffect},
	{Key: "running_rgb", Label: "Running: RGB", ID: 105, Kind: KindEffect},
	{Key: "running_ycp", Label: "Running: YCP", ID: 107, Kind: KindEffect},
	{Key: "run_back_red", Label: "Run Back: Red", ID: 90, Kind: KindEffect},
	{Key: "run_back_red_2", Label: "Run Back: Red 2", ID: 110, Kind: KindEffect},
	{Key: "run_back_red_3", Label: "Run Back: Red 3", ID: 112, Kind: KindEffect},
	{Key: "run_back_red_4", Label: "Run Back: Red 4", ID: 114, Kind: KindEffect},
	{Key: "run_back_red_5", Label: "Run Back: Red 5", ID: 116, Kind: KindEffect},
	{Key: "run_back_green", Label: "Run Back: Green", ID: 92, Kind: KindEffect},
	{Key: "run_back_green_2", Label: "Run Back: Green 2", ID: 118, Kind: KindEffect},
	{Key: "run_back_green_3", Label: "Run Back: Green 3", ID: 120, Kind: KindEffect},
	{Key: "run_back_green_4", Label: "Run Back: Green 4", ID: 122, Kind: KindEffect},
	{Key: "run_back_green_5", Label: "Run Back: Green 5", ID: 124, Kind: KindEffect},
	{Key: "run_back_blue", Label: "Run Back: Blue", ID: 94, Kind: KindEffect},
	{Key: "run_back_blue_2", Label: "Run Back: Blue 2", ID: 126, Kind: KindEffect},
	{Key: "run_back_blue_3", Label: "Run Back: Blue 3", ID: 128, Kind: KindEffect},
	{Key: "run_back_blue_4", Label: "Run Back: Blue 4", ID: 130, Kind: KindEffect},
	{Key: "run_back_blue_5", Label: "Run Back: Blue 5", ID: 132, Kind: KindEffect},
	{Key: "run_back_yellow", Label: "Run Back: Yellow", ID: 96, Kind: KindEffect},
	{Key: "run_back_yellow_2", Label: "Run Back: Yellow 2", ID: 134, Kind: KindEffect},
	{Key: "run_back_yellow_3", Label: "Run Back: Yellow 3", ID: 136, Kind: KindEffect},
	{Key: "run_back_yellow_4", Label: "Run Back: Yellow 4", ID: 138, Kind: KindEffect},
	{Key: "run_back_yellow_5", Label: "Run Back: Yellow 5", ID: 140, Kind: KindEffect},
	{Key: "run_back_cyan", Label: "Run Back: Cyan", ID: 98, Kind: KindEffect},
	{Key: "run_back_cyan_2", Label: "Run Back: Cyan 2", ID: 142, Kind: KindEffect},
	{Key: "run_back_cyan_3", Label: "Run Back: Cyan 3", ID: 168, Kind: KindEffect},
	{Key: "run_back_cyan_4", Label: "Run Back: Cyan 4", ID: 170, Kind: KindEffect},
	{Key: "run_back_cyan_5", Label: "Run Back: Cyan 5", ID: 172, Kind: KindEffect},
	{Key: "run_back_purple", Label: "Run Back: Purple", ID: 100, Kind: KindEffect},
	{Key: "run_back_purple_2", Label: "Run Back: Purple 2", ID: 174, Kind: KindEffect},
	{Key: "run_back_purple_3", Label: "Run Back: Purple 3", ID: 176, Kind: KindEffect},
	{Key: "run_back_purple_4", Label: "Run Back: Purple 4", ID: 178, Kind: KindEffect},
	{Key: "run_back_purple_5", Label: "Run Back: Purple 5", ID: 180, Kind: KindEffect},
	{Key: "run_back_white", Label: "Run Back: White", ID: 102, Kind: KindEffect},
	{Key: "run_back_7_color", Label: "Run Back: 7-Color", ID: 104, Kind: KindEffect},
	{Key: "run_back_rgb", Label: "Run Back: RGB", ID: 106, Kind: KindEffect},
	{Key: "run_back_ycp", Label: "Run Back: YCP", ID: 108, Kind: KindEffect},
}

var sceneTable = []Entry{
	{Key: "scene_sunrise", Label: "Scene: Sunrise", ID: 1, Kind: KindScene},
	{Key: "scene_sunset", Label: "Scene: Sunset", ID: 2, Kind: KindScene},
	{Key: "scene_birthday", Label: "Scene: Birthday", ID: 3, Kind: KindScene},
	{Key: "scene_candlelight", Label: "Scene: Candlelight", ID: 4, Kind: KindScene},
	{Key: "scene_fireworks", Label: "Scene: Fireworks", ID: 5, Kind: KindScene},
	{Key: "scene_party", Label: "Scene: Party", ID: 6, Kind: KindScene},
	{Key: "scene_datiny", Label: "Scene: Datiny", ID: 7, Kind: KindScene},
	{Key: "scene_starry_sky", Label: "Scene: Starry Sky", ID: 8, Kind: KindScene},
	{Key: "scene_romantic", Label: "Scene: Romantic", ID: 9, Kind: KindScene},
	{Key: "scene_disco", Label: "Scene: Disco", ID: 10, Kind: KindScene},
	{Key: "scene_rainbow", Label: "Scene: Rainbow", ID: 11, Kind: KindScene},
	{Key: "scene_movie", Label: "Scene: Movie", ID: 12, Kind: KindScene},
	{Key: "scene_christmas", Label: "Scene: Christmas", ID: 13, Kind: KindScene},
	{Key: "scene_flowing", Label: "Scene: Flowing", ID: 14, Kind: KindScene},
	{Key: "scene_sleeping", Label: "Scene: Sleeping", ID: 15, Kind: KindScene},
	{Key: "scene_ocean", Label: "Scene: Ocean", ID: 16, Kind: KindScene},
	{Key: "scene_forest", Label: "Scene: Forest", ID: 17, Kind: KindScene},
	{Key: "scene_reading", Label: "Scene: Reading", ID: 18, Kind: KindScene},
	{Key: "scene_working", Label: "Scene: Working", ID: 19, Kind: KindScene},
	{Key: "scene_dazzle", Label: "Scene: Dazzle", ID: 20, Kind: KindScene},
	{Key: "scene_gentle", Label: "Scene: Gentle", ID: 21, Kind: KindScene},
	{Key: "scene_wedding", Label: "Scene: Wedding", ID: 22, Kind: KindScene},
	{Key: "scene_snow", Label: "Scene: Snow", ID: 23, Kind: KindScene},
	{Key: "scene_fire", Label: "Scene: Fire", ID: 24, Kind: KindScene},
	{Key: "scene_lightning", Label: "Scene: Lightning", ID: 25, Kind: KindScene},
	{Key: "scene_valentines_day", Label: "Scene: Valentine's Day", ID: 26, Kind: KindScene},
	{Key: "scene_hallowmas", Label: "Scene: Hallowmas", ID: 27, Kind: KindScene},
	{Key: "scene_warning", Label: "Scene: Warning", ID: 28, Kind: KindScene},
}

var micModeTable = []MicMode{
	{Key: "energic", Label: "Energic", Value: 0x80},
	{Key: "rhythm", Label: "Rhythm", Value: 0x81},
	{Key: "spectrum", Label: "Spectrum", Value: 0x82},
	{Key: "rolling", Label: "Rolling", Value: 0x83},
	{Key: "rhythm_spectrum", Label: "Rhythm+Spectrum", Value: 0x84},
	{Key: "rhythm_rolling", Label: "Rhythm+Rolling", Value: 0x85},
	{Key: "spectrum_rolling", Label: "Spectrum+Rolling", Value: 0x86},
	{Key: "energic_rolling", Label: "Energic+Rolling", Value: 0x87},
}
